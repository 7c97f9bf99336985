package strex

import (
	"strings"
	"unicode/utf8"
)

// NewScanner allocates a Scanner positioned at the start of text
func NewScanner(text string) *Scanner {
	return &Scanner{text: text, cur: Cursor{Line: 1}}
}

// Scanner steps through source text, keeping the line and column
// number of the current position. Only a line feed starts a new line.
// A Scanner is not safe for concurrent use; construct one per
// consumer, sharing the text.
type Scanner struct {
	text string
	cur  Cursor
}

// Text returns the full source text the Scanner was created with
func (s *Scanner) Text() string {
	return s.text
}

// Snapshot returns the current position. The returned Cursor may be
// passed to Restore to roll back a speculative scan.
func (s *Scanner) Snapshot() Cursor {
	return s.cur
}

// Restore moves the Scanner back (or forward) to a previously taken
// snapshot
func (s *Scanner) Restore(c Cursor) {
	s.cur = c
}

// AtEnd reports whether the entire text has been consumed
func (s *Scanner) AtEnd() bool {
	return s.cur.Index >= len(s.text)
}

// Peek returns up to n bytes starting at the current position without
// advancing, fewer at the end of input
func (s *Scanner) Peek(n int) string {
	if rest := len(s.text) - s.cur.Index; n > rest {
		n = rest
	}
	return s.text[s.cur.Index : s.cur.Index+n]
}

// Advance moves the cursor forward by n bytes, counting line feeds in
// the consumed text. Advancing past the end of input returns an
// OutOfBoundsError and leaves the cursor unchanged.
func (s *Scanner) Advance(n int) error {
	if rest := len(s.text) - s.cur.Index; n > rest {
		return &OutOfBoundsError{Requested: n, Remaining: rest, Cursor: s.cur}
	}
	s.cur = advance(s.cur, s.text[s.cur.Index:s.cur.Index+n])
	return nil
}

// ReadLine consumes and returns the remainder of the current line,
// including the trailing line feed if present
func (s *Scanner) ReadLine() string {
	rest := s.text[s.cur.Index:]
	end := len(rest)
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		end = i + 1
	}
	line := rest[:end]
	s.cur = advance(s.cur, line)
	return line
}

// advance returns the cursor after consuming text starting at c
func advance(c Cursor, consumed string) Cursor {
	c.Index += len(consumed)
	for i := 0; i < len(consumed); {
		r, size := utf8.DecodeRuneInString(consumed[i:])
		if r == '\n' {
			c.Line++
			c.Column = 0
		} else {
			c.Column++
		}
		i += size
	}
	return c
}
