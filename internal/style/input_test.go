package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Input
	}{
		{name: "empty", raw: "", want: Unset()},
		{name: "whitespace", raw: "   ", want: Unset()},
		{name: "hex color", raw: "#ff0000", want: Input{Kind: KindLiteral, Value: "#ff0000"}},
		{name: "rgb function", raw: "rgb(0, 0, 0)", want: Input{Kind: KindLiteral, Value: "rgb(0, 0, 0)"}},
		{name: "dimension", raw: "4px", want: Input{Kind: KindLiteral, Value: "4px"}},
		{name: "shorthand", raw: "1px solid red", want: Input{Kind: KindLiteral, Value: "1px solid red"}},
		{
			name: "linear gradient",
			raw:  "linear-gradient(90deg, #fff, #000)",
			want: Input{Kind: KindGradient, Value: "linear-gradient(90deg, #fff, #000)"},
		},
		{
			name: "radial gradient",
			raw:  "radial-gradient(circle, red, blue)",
			want: Input{Kind: KindGradient, Value: "radial-gradient(circle, red, blue)"},
		},
		{
			name: "conic gradient",
			raw:  "conic-gradient(from 0deg, red, blue)",
			want: Input{Kind: KindGradient, Value: "conic-gradient(from 0deg, red, blue)"},
		},
		{
			name: "repeating gradient",
			raw:  "repeating-linear-gradient(45deg, red 0 10px, blue 10px 20px)",
			want: Input{Kind: KindGradient, Value: "repeating-linear-gradient(45deg, red 0 10px, blue 10px 20px)"},
		},
		{name: "bare token", raw: "color-success", want: Input{Kind: KindToken, Value: "color-success"}},
		{name: "custom property token", raw: "--color-success", want: Input{Kind: KindToken, Value: "--color-success"}},
		{name: "var reference", raw: "var(--color-success)", want: Input{Kind: KindToken, Value: "var(--color-success)"}},
		{name: "var with fallback", raw: "var(--x, #fff)", want: Input{Kind: KindToken, Value: "var(--x, #fff)"}},
		{name: "two var references", raw: "var(--a) var(--b)", want: Input{Kind: KindLiteral, Value: "var(--a) var(--b)"}},
		{name: "trimmed", raw: "  #fff  ", want: Input{Kind: KindLiteral, Value: "#fff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestConstructorsTreatEmptyAsUnset(t *testing.T) {
	assert.False(t, Literal("").IsSet())
	assert.False(t, Gradient(" ").IsSet())
	assert.False(t, Token("").IsSet())
	assert.True(t, Literal("#fff").IsSet())
}

func TestIsGradientValue(t *testing.T) {
	assert.True(t, IsGradientValue("linear-gradient(90deg, #fff, #000)"))
	assert.True(t, IsGradientValue("radial-gradient(red, blue)"))
	assert.True(t, IsGradientValue("conic-gradient(red, blue)"))
	assert.True(t, IsGradientValue("repeating-linear-gradient(red, blue)"))
	assert.True(t, IsGradientValue("url(a.png), LINEAR-GRADIENT(red, blue)"))
	assert.False(t, IsGradientValue("#ff0000"))
	assert.False(t, IsGradientValue("gradient-primary"))
}
