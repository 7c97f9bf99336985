package strex

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// calc is a recursive-descent parser over a Lexer, the consumer shape
// this engine is built for: alternatives are probed with Accept and
// hard requirements pulled with a contextual Next.
type calc struct {
	lex *Lexer
}

func evalCalc(input string) (float64, error) {
	rs := NewRuleset()
	for _, step := range []error{
		rs.Add("num", MustRegex(`[0-9]+(\.[0-9]+)?`)),
		rs.Add("lparen", NewKeyword("(")),
		rs.Add("rparen", NewKeyword(")")),
		rs.Add("plus", NewKeyword("+")),
		rs.Add("minus", NewKeyword("-")),
		rs.Add("star", NewKeyword("*")),
		rs.Add("slash", NewKeyword("/")),
		rs.Add("ws", NewCharset(" \t")),
		rs.Skip("ws"),
	} {
		if step != nil {
			return 0, step
		}
	}

	p := &calc{lex: NewLexer(NewScanner(input), rs)}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if _, err := p.lex.Next(EOF); err != nil {
		return 0, err
	}
	return v, nil
}

func (p *calc) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op, ok, err := p.lex.Accept("plus", "minus")
		if err != nil {
			return 0, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op.Type == "plus" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *calc) term() (float64, error) {
	left, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok, err := p.lex.Accept("star", "slash")
		if err != nil {
			return 0, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op.Type == "star" {
			left *= right
		} else {
			left /= right
		}
	}
}

func (p *calc) factor() (float64, error) {
	if _, ok, err := p.lex.Accept("lparen"); err != nil {
		return 0, err
	} else if ok {
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if _, err := p.lex.Next("rparen"); err != nil {
			return 0, err
		}
		return v, nil
	}

	if _, ok, err := p.lex.Accept("minus"); err != nil {
		return 0, err
	} else if ok {
		v, err := p.factor()
		return -v, err
	}

	tok, err := p.lex.Next("num")
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(tok.Value, 64)
}

func TestCalcParser(t *testing.T) {
	goodCases := []struct {
		input string
		value float64
	}{
		{"2+3", 5},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2.5},
		{"-3+5", 2},
		{"2*-3", -6},
		{" 1 + 2 * ( 3 - 1 ) ", 5},
		{"1.5*4", 6},
	}

	for _, c := range goodCases {
		t.Run(fmt.Sprintf("Eval_%s", c.input), func(t *testing.T) {
			got, err := evalCalc(c.input)
			if err != nil {
				t.Fatalf("error: %s", err)
			}
			if diff := cmp.Diff(c.value, got); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}

	badCases := []string{
		"2+",
		"(2",
		")2",
		"2 2",
		"*3",
	}

	for _, input := range badCases {
		t.Run(fmt.Sprintf("Reject_%s", input), func(t *testing.T) {
			if v, err := evalCalc(input); err == nil {
				t.Errorf("expected error, got %v", v)
			}
		})
	}
}
