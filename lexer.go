package strex

import "unicode/utf8"

// lexerState tracks where a Lexer is in its lifecycle
type lexerState int

const (
	// stateReady means no token has been pulled yet
	stateReady lexerState = iota
	// stateScanning means tokens are being produced
	stateScanning
	// stateExhausted means the eof token was produced; further pulls
	// return it again
	stateExhausted
	// stateFailed means an unrecoverable error was returned; further
	// pulls return it again
	stateFailed
)

// NewLexer allocates a Lexer that drives scanner against rules. The
// Lexer owns the Scanner exclusively; the Ruleset is shared read-only
// and may back other Lexers at the same time.
func NewLexer(scanner *Scanner, rules *Ruleset) *Lexer {
	return &Lexer{scanner: scanner, rules: rules}
}

// Lexer splits a Scanner's text into Tokens using an ordered Ruleset.
// Tokens are produced lazily, one per Next call, ending with a single
// token of the reserved eof type. When several rules match at a
// position the first one declared in the Ruleset wins, regardless of
// match length; rule authors order rules accordingly.
type Lexer struct {
	scanner *Scanner
	rules   *Ruleset
	state   lexerState
	tok     Token
	err     error
}

// Token returns the most recently produced token, the zero Token
// before the first pull
func (l *Lexer) Token() Token {
	return l.tok
}

// Next produces the next token.
//
// With no arguments every rule is a candidate, tried in declaration
// order; if none matches Next returns an UnexpectedCharacterError.
// At the end of input it returns the eof token, and again on every
// later call.
//
// Arguments restrict the candidates to exactly the named rules, tried
// in the order given, for grammars where acceptable token types
// depend on context. Skip rules stay implicitly eligible, so
// whitespace keeps being consumed, but a skip rule that is named
// explicitly is emitted rather than skipped. If no expected rule
// matches Next returns an UnexpectedTokenError naming the rule that
// would have matched unrestricted. Expecting the eof type accepts the
// end of input.
//
// An error other than a repeated eof pull is terminal: the Lexer
// keeps returning it and the caller must construct a new Lexer to
// scan again.
func (l *Lexer) Next(expected ...string) (Token, error) {
	tok, err := l.read(expected)
	if err != nil {
		l.fail(err)
		return Token{}, err
	}
	l.tok = tok
	return tok, nil
}

// Accept is a non-fatal probe for the named rules: on a match it
// commits and returns the token, otherwise it reports false and
// leaves the scan position exactly where it was, even when skip rules
// consumed text along the way. This lets a parser try several
// alternative continuations without committing to any. Errors are
// only returned for misuse or engine defects (unknown rule names,
// duplicate rules, zero-length match loops), never for a plain
// failure to match.
func (l *Lexer) Accept(names ...string) (Token, bool, error) {
	if l.state == stateFailed {
		return Token{}, false, l.err
	}
	save := l.scanner.Snapshot()
	tok, err := l.read(names)
	if err != nil {
		switch err.(type) {
		case *UnexpectedTokenError, *UnexpectedCharacterError:
			l.scanner.Restore(save)
			return Token{}, false, nil
		}
		l.fail(err)
		return Token{}, false, err
	}
	l.tok = tok
	return tok, true, nil
}

// Tokens drains the Lexer with unrestricted Next calls, returning
// every token produced up to and including the eof token
func (l *Lexer) Tokens() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.EOF() {
			return toks, nil
		}
	}
}

// fail records a terminal error. Pulls after exhaustion do not fail
// the Lexer; the eof token simply repeats.
func (l *Lexer) fail(err error) {
	if l.state == stateExhausted {
		return
	}
	l.state = stateFailed
	l.err = err
}

// read runs the pull algorithm: skip-rule matches are consumed
// silently and the first non-skip winner becomes the token, carrying
// the cursor where its match began
func (l *Lexer) read(expected []string) (Token, error) {
	switch l.state {
	case stateFailed:
		return Token{}, l.err
	case stateExhausted:
		if len(expected) == 0 || contains(expected, EOF) {
			return l.tok, nil
		}
		return Token{}, &UnexpectedTokenError{Expected: expected, Cursor: l.tok.Cursor, Actual: EOF}
	}

	if l.rules.stale() {
		if err := l.rules.UpdateMap(); err != nil {
			return Token{}, err
		}
	}

	// resolve expectations before consuming anything, so unknown
	// names fail without moving the scanner. The eof type is not a
	// rule; it stands for the end of input below.
	want := make([]*Rule, 0, len(expected))
	for _, name := range expected {
		if name == EOF {
			continue
		}
		r, err := l.rules.Lookup(name)
		if err != nil {
			return Token{}, err
		}
		want = append(want, r)
	}

	l.state = stateScanning
	for {
		at := l.scanner.Snapshot()
		if l.scanner.AtEnd() {
			if len(expected) > 0 && !contains(expected, EOF) {
				return Token{}, &UnexpectedTokenError{Expected: expected, Cursor: at, Actual: EOF}
			}
			l.state = stateExhausted
			return Token{Type: EOF, Cursor: at}, nil
		}

		rule, n, err := l.pick(at, expected, want)
		if err != nil {
			return Token{}, err
		}
		if rule == nil {
			if len(expected) > 0 {
				return Token{}, &UnexpectedTokenError{Expected: expected, Cursor: at, Actual: l.wouldMatch(at)}
			}
			r, _ := utf8.DecodeRuneInString(l.scanner.Text()[at.Index:])
			return Token{}, &UnexpectedCharacterError{Cursor: at, Char: string(r)}
		}

		lexeme := l.scanner.Text()[at.Index : at.Index+n]
		if err := l.scanner.Advance(n); err != nil {
			return Token{}, err
		}
		if rule.Skip && !contains(expected, rule.Name) {
			continue
		}
		return Token{Type: rule.Name, Value: lexeme, Cursor: at}, nil
	}
}

// pick returns the winning rule and its match length at the given
// position. Unrestricted, candidates are all rules in declaration
// order; restricted, they are the expected rules in the order given
// followed by the skip rules. Zero-length matches never win, and if
// one is all that matches at the position pick fails with a
// NoProgressError, since committing it would never move the scanner.
func (l *Lexer) pick(at Cursor, expected []string, want []*Rule) (*Rule, int, error) {
	text := l.scanner.Text()
	var zero *Rule

	try := func(r *Rule) (int, bool) {
		n := r.Variant.match(text, at)
		if n > 0 {
			return n, true
		}
		if n == 0 && zero == nil {
			zero = r
		}
		return 0, false
	}

	if len(expected) == 0 {
		for _, r := range l.rules.Rules() {
			if n, ok := try(r); ok {
				return r, n, nil
			}
		}
	} else {
		for _, r := range want {
			if n, ok := try(r); ok {
				return r, n, nil
			}
		}
		for _, r := range l.rules.skips {
			if contains(expected, r.Name) {
				continue
			}
			if n, ok := try(r); ok {
				return r, n, nil
			}
		}
	}

	if zero != nil {
		return nil, 0, &NoProgressError{Rule: zero.Name, Cursor: at}
	}
	return nil, 0, nil
}

// wouldMatch names the rule an unrestricted scan would have picked at
// the given position, for contextual error diagnostics
func (l *Lexer) wouldMatch(at Cursor) string {
	text := l.scanner.Text()
	for _, r := range l.rules.Rules() {
		if r.Variant.match(text, at) > 0 {
			return r.Name
		}
	}
	return ""
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
