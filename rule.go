package strex

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// noMatch is the match result for a variant that does not match at
// the given position. Zero is a legal result: it means the variant
// matched without consuming anything.
const noMatch = -1

// Rule pairs a token type name with the variant that recognizes it.
// Rules never move a Scanner themselves; they only report how far a
// match would reach, and the Lexer commits the winner.
type Rule struct {
	// Name is the token type produced by this rule, unique within a
	// Ruleset
	Name string
	// Skip marks matches to be consumed but never emitted as tokens
	Skip bool
	// Variant is the matching behavior
	Variant Variant
}

// Variant answers how many bytes a rule consumes when matched at an
// exact position in text, anchored there with no internal skipping.
// The variant set is closed: Charset, Keyword and PatternRule are the
// only implementations.
type Variant interface {
	// match reports the byte length of the match beginning at the
	// cursor, or noMatch
	match(text string, at Cursor) int
}

// Charset matches the longest contiguous run of characters drawn
// from a fixed set. A run of zero characters is no match.
type Charset struct {
	set      map[rune]bool
	atColumn int
}

// NewCharset returns a charset variant over the runes of set
func NewCharset(set string) *Charset {
	return newCharset(set, -1)
}

// NewCharsetAt returns a charset variant that only matches when the
// scan position is at the given column. This is useful to make
// indentation a separate token type from ordinary whitespace.
func NewCharsetAt(set string, column int) *Charset {
	return newCharset(set, column)
}

func newCharset(set string, column int) *Charset {
	members := make(map[rune]bool, len(set))
	for _, r := range set {
		members[r] = true
	}
	return &Charset{set: members, atColumn: column}
}

func (c *Charset) match(text string, at Cursor) int {
	if c.atColumn >= 0 && c.atColumn != at.Column {
		return noMatch
	}
	n := 0
	for _, r := range text[at.Index:] {
		if !c.set[r] {
			break
		}
		n += utf8.RuneLen(r)
	}
	if n == 0 {
		return noMatch
	}
	return n
}

// Keyword matches one exact literal string
type Keyword struct {
	lit  string
	fold bool
}

// NewKeyword returns a keyword variant matching lit exactly
func NewKeyword(lit string) *Keyword {
	return &Keyword{lit: lit}
}

// NewKeywordFold returns a case-insensitive keyword variant. The
// matched lexeme keeps the spelling found in the source.
func NewKeywordFold(lit string) *Keyword {
	return &Keyword{lit: lit, fold: true}
}

func (k *Keyword) match(text string, at Cursor) int {
	rest := text[at.Index:]
	n := 0
	for _, want := range k.lit {
		r, size := utf8.DecodeRuneInString(rest[n:])
		if size == 0 {
			return noMatch
		}
		if k.fold {
			r = unicode.ToLower(r)
			want = unicode.ToLower(want)
		}
		if r != want {
			return noMatch
		}
		n += size
	}
	return n
}

// Pattern is the matching capability a PatternRule delegates to. It
// decides its own syntax and greediness; the engine only asks how
// much a match at an exact position consumes.
type Pattern interface {
	// MatchAt reports the number of bytes a match consumes starting
	// at pos in text, or a negative value for no match. Zero means a
	// zero-length match.
	MatchAt(text string, pos int) int
}

// PatternRule delegates matching to an opaque Pattern
type PatternRule struct {
	pat Pattern
}

// NewPattern returns a variant backed by the given Pattern
func NewPattern(p Pattern) *PatternRule {
	return &PatternRule{pat: p}
}

// NewRegex returns a pattern variant matching the regular expression
// expr anchored at the scan position
func NewRegex(expr string) (*PatternRule, error) {
	re, err := regexp.Compile("^(?:" + expr + ")")
	if err != nil {
		return nil, err
	}
	return &PatternRule{pat: regexPattern{re}}, nil
}

// MustRegex is NewRegex that panics on an invalid expression,
// intended for rulesets built from constant patterns
func MustRegex(expr string) *PatternRule {
	v, err := NewRegex(expr)
	if err != nil {
		panic(err)
	}
	return v
}

func (p *PatternRule) match(text string, at Cursor) int {
	if n := p.pat.MatchAt(text, at.Index); n >= 0 {
		return n
	}
	return noMatch
}

// regexPattern adapts a compiled regular expression to the Pattern
// interface. The expression is anchored with ^ at compile time, so
// matching against text[pos:] anchors it at pos.
type regexPattern struct {
	re *regexp.Regexp
}

func (r regexPattern) MatchAt(text string, pos int) int {
	loc := r.re.FindStringIndex(text[pos:])
	if loc == nil {
		return noMatch
	}
	return loc[1]
}
