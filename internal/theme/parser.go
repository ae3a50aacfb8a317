package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// parserState maintains context while parsing a theme stylesheet
type parserState struct {
	filename string
	order    []string          // Theme names in order of first appearance
	themes   map[string]*Theme // Use map to merge repeated blocks within one file
}

// Parse reads CSS custom properties from content and returns one Theme per
// theme selector found. Recognized selectors:
//
//	:root                  -> "default"
//	.theme-dark            -> "dark"
//	[data-theme="dark"]    -> "dark"
//
// Rules with other selectors are skipped. At-rule blocks (@layer, @media)
// are transparent.
func Parse(content string, filename string) ([]Theme, error) {
	state := &parserState{
		filename: filename,
		themes:   make(map[string]*Theme),
	}

	lexer := css.NewLexer(parse.NewInputString(content))

	var prelude []selectorToken
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("lex %s: %w", filename, err)
			}
			break
		}

		switch tt {
		case css.CommentToken, css.WhitespaceToken:
			continue
		case css.AtKeywordToken:
			// @layer name { ... } / @media (...) { ... }: skip the prelude, keep the block
			skipAtRulePrelude(lexer)
			prelude = nil
			continue
		case css.RightBraceToken:
			// Closing an at-rule block
			prelude = nil
			continue
		case css.LeftBraceToken:
			names := themeNames(prelude)
			prelude = nil
			if len(names) == 0 {
				skipBlock(lexer)
				continue
			}
			state.apply(names, extractCustomProperties(lexer))
			continue
		}

		prelude = append(prelude, selectorToken{tt: tt, text: string(text)})
	}

	result := make([]Theme, 0, len(state.order))
	for _, name := range state.order {
		result = append(result, *state.themes[name])
	}
	return result, nil
}

// ParseFile reads and parses a single theme stylesheet
func ParseFile(path string) ([]Theme, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(string(content), path)
}

func (s *parserState) apply(names []string, props map[string]string) {
	for _, name := range names {
		t, ok := s.themes[name]
		if !ok {
			t = &Theme{Name: name, Tokens: make(map[string]string), Source: s.filename}
			s.themes[name] = t
			s.order = append(s.order, name)
		}
		for k, v := range props {
			t.Tokens[k] = v
		}
	}
}

type selectorToken struct {
	tt   css.TokenType
	text string
}

// themeNames maps a selector list to theme names. Every comma-separated
// selector must be a theme selector, otherwise the rule is not a theme rule.
func themeNames(prelude []selectorToken) []string {
	var names []string
	var current []selectorToken

	flush := func() bool {
		name, ok := themeName(current)
		current = nil
		if !ok {
			return false
		}
		names = append(names, name)
		return true
	}

	for _, tok := range prelude {
		if tok.tt == css.CommaToken {
			if !flush() {
				return nil
			}
			continue
		}
		current = append(current, tok)
	}
	if !flush() {
		return nil
	}
	return names
}

func themeName(sel []selectorToken) (string, bool) {
	switch {
	// :root
	case len(sel) == 2 && sel[0].tt == css.ColonToken && sel[1].tt == css.IdentToken && sel[1].text == "root":
		return DefaultName, true

	// .theme-<name>
	case len(sel) == 2 && sel[0].tt == css.DelimToken && sel[0].text == "." &&
		sel[1].tt == css.IdentToken && strings.HasPrefix(sel[1].text, "theme-"):
		name := strings.TrimPrefix(sel[1].text, "theme-")
		return name, name != ""

	// [data-theme="<name>"] / [data-theme=<name>]
	case len(sel) == 5 && sel[0].tt == css.LeftBracketToken && sel[1].text == "data-theme" &&
		sel[2].text == "=" && sel[4].tt == css.RightBracketToken:
		name := strings.Trim(sel[3].text, `"'`)
		return name, name != ""
	}
	return "", false
}

// extractCustomProperties reads --name: value pairs until the closing brace.
// Regular declarations are ignored.
func extractCustomProperties(lexer *css.Lexer) map[string]string {
	props := make(map[string]string)

	var currentProp string
	var currentVal []string
	inValue := false
	depth := 0

	save := func() {
		if strings.HasPrefix(currentProp, "--") && len(currentVal) > 0 {
			props[NormalizeToken(currentProp)] = strings.TrimSpace(strings.Join(currentVal, ""))
		}
		currentProp = ""
		currentVal = nil
		inValue = false
	}

	for {
		tt, text := lexer.Next()

		if tt == css.ErrorToken {
			save()
			return props
		}

		switch {
		case tt == css.RightBraceToken && depth == 0:
			save()
			return props
		case tt == css.CommentToken:
			continue
		case !inValue && currentProp == "" && (tt == css.IdentToken || tt == css.CustomPropertyNameToken):
			currentProp = string(text)
		case !inValue && tt == css.ColonToken && currentProp != "":
			inValue = true
		case tt == css.SemicolonToken && depth == 0:
			save()
		case inValue:
			switch tt {
			case css.LeftBraceToken, css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
				depth++
			case css.RightBraceToken, css.RightParenthesisToken, css.RightBracketToken:
				depth--
			}
			currentVal = append(currentVal, string(text))
		}
	}
}

// skipBlock consumes tokens through the brace matching an already-consumed '{'
func skipBlock(lexer *css.Lexer) {
	depth := 1
	for depth > 0 {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

// skipAtRulePrelude consumes an at-rule prelude. Statement at-rules
// (@import ...;) end at the semicolon; block at-rules stop after '{'.
func skipAtRulePrelude(lexer *css.Lexer) {
	for {
		tt, _ := lexer.Next()
		if tt == css.ErrorToken || tt == css.SemicolonToken || tt == css.LeftBraceToken {
			return
		}
	}
}
