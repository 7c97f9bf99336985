// Package strex is a small tokenization engine for hand-written
// lexers feeding recursive-descent parsers. A Ruleset of ordered,
// named rules is driven over source text by a Lexer, producing a lazy
// sequence of Tokens:
//
//	rules := strex.NewRuleset()
//	rules.Add("ws", strex.NewCharset(" \t\n"))
//	rules.Add("id", strex.NewCharset("abcdefghijklmnopqrstuvwxyz"))
//	rules.Add("op", strex.NewCharset("+-*/"))
//	rules.Add("num", strex.MustRegex(`[0-9]+(\.[0-9]+)?`))
//	rules.Skip("ws")
//
//	lex := strex.NewLexer(strex.NewScanner("x * a + 2"), rules)
//	for {
//		tok, err := lex.Next()
//		// ...
//	}
//
// The same Ruleset may back any number of Lexers. Parsers that need
// contextual tokenization restrict what is acceptable next per call,
// with Next("id", "num") or the non-fatal probe Accept("op").
package strex

// Tokenize scans text against rules in a single call, returning every
// non-skipped token through the terminating eof token
func Tokenize(text string, rules *Ruleset) ([]Token, error) {
	return NewLexer(NewScanner(text), rules).Tokens()
}
