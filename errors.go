package strex

import (
	"fmt"
	"strings"
)

// OutOfBoundsError is returned when a Scanner is asked to advance
// past the available input. It signals a defect in the calling code,
// not a property of the input.
type OutOfBoundsError struct {
	Requested int
	Remaining int
	Cursor    Cursor
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cannot advance %d bytes at %s: %d remaining", e.Requested, e.Cursor, e.Remaining)
}

// UnexpectedCharacterError is returned when no rule, skip rules
// included, matched at the current position during unrestricted
// scanning. The Lexer that produced it cannot continue.
type UnexpectedCharacterError struct {
	Cursor Cursor
	// Char is the offending character, empty at end of input
	Char string
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("could not tokenize stream at %s: %q", e.Cursor, e.Char)
}

// UnexpectedTokenError is returned when a contextual Next call found
// that none of the expected rules match at the current position.
type UnexpectedTokenError struct {
	// Expected is the rule names the caller would accept, in the
	// priority order given
	Expected []string
	Cursor   Cursor
	// Actual is the rule that would have matched without the
	// restriction, the eof type at end of input, or empty when
	// nothing matches at all
	Actual string
}

func (e *UnexpectedTokenError) Error() string {
	var expected string
	if len(e.Expected) == 1 {
		expected = fmt.Sprintf("%q", e.Expected[0])
	} else {
		expected = "{" + strings.Join(e.Expected, ",") + "}"
	}
	if e.Actual == "" {
		return fmt.Sprintf("expected token %s at %s, but nothing matches there", expected, e.Cursor)
	}
	return fmt.Sprintf("expected token %s, got %q instead at %s", expected, e.Actual, e.Cursor)
}

// DuplicateRuleError is returned when a rule name is registered twice
// in one Ruleset, or shadows the reserved eof type
type DuplicateRuleError struct {
	Name string
}

func (e *DuplicateRuleError) Error() string {
	if e.Name == EOF {
		return fmt.Sprintf("rule name %q is reserved", e.Name)
	}
	return fmt.Sprintf("duplicate rule name %q", e.Name)
}

// UnknownRuleError is returned when a rule name is looked up or
// expected but was never registered
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.Name)
}

// NoProgressError is returned when the only match available at a
// position has zero length, so committing it would leave the scanner
// where it was forever. It signals a defective rule, and the Lexer
// that produced it cannot continue.
type NoProgressError struct {
	Rule   string
	Cursor Cursor
}

func (e *NoProgressError) Error() string {
	return fmt.Sprintf("rule %q matched zero characters at %s without moving the scanner", e.Rule, e.Cursor)
}
