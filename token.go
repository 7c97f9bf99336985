package strex

import "fmt"

// EOF is the reserved token type produced when the end of input is
// reached. It is never matched by a rule, and Ruleset.Add rejects it
// as a rule name.
const EOF = "eof"

// Cursor is an immutable snapshot of a scan position
type Cursor struct {
	// Index is the byte offset into the source text
	Index int
	// Line is the 1-based line number
	Line int
	// Column counts runes since the last line feed, starting at 0
	Column int
}

// String implements the stringer interface for Cursor
func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// Token is a lexeme recognized by a rule, tagged with the rule name
// and the position where the match began. Tokens are self-contained
// values, independent of the Scanner and Lexer that produced them.
type Token struct {
	Type   string
	Value  string
	Cursor Cursor
}

// String implements the stringer interface for Token
func (t Token) String() string {
	if t.EOF() {
		return fmt.Sprintf("<eof at %s>", t.Cursor)
	}
	return fmt.Sprintf("<%s:%q at %s>", t.Type, t.Value, t.Cursor)
}

// EOF reports whether this is the end-of-input token
func (t Token) EOF() bool {
	return t.Type == EOF
}
