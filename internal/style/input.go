// Package style turns loosely-typed styling inputs into render-ready values.
//
// An Input is a small tagged union: unset, a literal value, a gradient
// expression, or a theme token. A Resolver maps inputs to concrete values
// against the active theme, Combine picks one winner per property by a fixed
// precedence, and Emit flattens the winners into scoped variables and
// presentation classes.
package style

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Kind tags an Input.
type Kind int

const (
	// KindUnset means no value was supplied; the rendering layer default applies.
	KindUnset Kind = iota
	// KindLiteral is a concrete value passed through as-is ("#ff0000", "4px").
	KindLiteral
	// KindGradient is a gradient expression; never looked up in a theme.
	KindGradient
	// KindToken names a theme token ("color-success", "var(--color-success)").
	KindToken
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindLiteral:
		return "literal"
	case KindGradient:
		return "gradient"
	case KindToken:
		return "token"
	}
	return "unknown"
}

// Input is one styling input.
type Input struct {
	Kind  Kind
	Value string
}

// Unset returns the empty input.
func Unset() Input { return Input{} }

// Literal wraps a concrete value. An empty value is unset.
func Literal(v string) Input { return of(KindLiteral, v) }

// Gradient wraps a gradient expression. An empty value is unset.
func Gradient(v string) Input { return of(KindGradient, v) }

// Token wraps a token reference. An empty value is unset.
func Token(v string) Input { return of(KindToken, v) }

func of(k Kind, v string) Input {
	v = strings.TrimSpace(v)
	if v == "" {
		return Input{}
	}
	return Input{Kind: k, Value: v}
}

// IsSet reports whether the input carries a value.
func (in Input) IsSet() bool {
	return in.Kind != KindUnset
}

// gradientFunctions are the function tokens that open a gradient expression.
var gradientFunctions = []string{
	"linear-gradient(",
	"radial-gradient(",
	"conic-gradient(",
	"repeating-linear-gradient(",
	"repeating-radial-gradient(",
	"repeating-conic-gradient(",
}

// Parse classifies a raw configuration string by its leading CSS token:
//
//	""                                  -> unset
//	"linear-gradient(...)" etc.         -> gradient
//	"color-success", "--x", "var(--x)"  -> token
//	anything else ("#fff", "4px")       -> literal
//
// Bare identifiers are tokens even when they are also CSS keywords ("red");
// the resolver passes unknown tokens through unchanged.
func Parse(raw string) Input {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Input{}
	}

	lexer := css.NewLexer(parse.NewInputString(raw))
	tt, text := lexer.Next()
	for tt == css.WhitespaceToken || tt == css.CommentToken {
		tt, text = lexer.Next()
	}

	switch tt {
	case css.FunctionToken:
		fn := strings.ToLower(string(text))
		if isGradientFunction(fn) {
			return Input{Kind: KindGradient, Value: raw}
		}
		if fn == "var(" && isSingleVarReference(raw) {
			return Input{Kind: KindToken, Value: raw}
		}
	case css.IdentToken, css.CustomPropertyNameToken:
		// Only a lone identifier is a token; "solid 1px" is a literal.
		if next, _ := lexer.Next(); next == css.ErrorToken {
			return Input{Kind: KindToken, Value: raw}
		}
	}
	return Input{Kind: KindLiteral, Value: raw}
}

func isGradientFunction(fn string) bool {
	for _, g := range gradientFunctions {
		if fn == g {
			return true
		}
	}
	return false
}

// isSingleVarReference reports whether raw is exactly one var(...) call.
func isSingleVarReference(raw string) bool {
	depth := 0
	for i, r := range raw {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(raw)-1
			}
		}
	}
	return false
}

// IsGradientValue reports whether a resolved value contains a gradient
// function. Classification is textual so a token that resolves to a gradient
// is classified as a gradient.
func IsGradientValue(v string) bool {
	lower := strings.ToLower(v)
	for _, form := range []string{"linear-gradient(", "radial-gradient(", "conic-gradient("} {
		if strings.Contains(lower, form) {
			return true
		}
	}
	return false
}
