package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinePrecedence(t *testing.T) {
	r := NewResolver(Static(testTheme()), nil)

	tests := []struct {
		name string
		c    Candidates
		want Resolved
	}{
		{
			name: "gradient overrides color",
			c: Candidates{
				Gradient: Gradient("linear-gradient(90deg, #fff, #000)"),
				Color:    Literal("#ff0000"),
			},
			want: Resolved{Value: "linear-gradient(90deg, #fff, #000)", IsGradient: true, Set: true},
		},
		{
			name: "color overrides base",
			c:    Candidates{Color: Literal("#ff0000"), Base: Token("color-primary")},
			want: Resolved{Value: "#ff0000", Set: true},
		},
		{
			name: "base used when nothing else set",
			c:    Candidates{Base: Token("color-primary")},
			want: Resolved{Value: "#3b82f6", Set: true},
		},
		{
			name: "color token resolving to gradient is classified gradient",
			c:    Candidates{Color: Token("gradient-primary")},
			want: Resolved{Value: "linear-gradient(90deg, #3b82f6, #9333ea)", IsGradient: true, Set: true},
		},
		{
			name: "gradient slot holding a token resolves through theme",
			c:    Candidates{Gradient: Token("gradient-primary"), Color: Literal("#000")},
			want: Resolved{Value: "linear-gradient(90deg, #3b82f6, #9333ea)", IsGradient: true, Set: true},
		},
		{
			name: "all unset falls through",
			c:    Candidates{},
			want: Resolved{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Combine(tt.c))
		})
	}
}

func TestCandidatesOfIsOrderIndependent(t *testing.T) {
	r := NewResolver(Static(testTheme()), nil)
	grad := Parse("linear-gradient(90deg, #fff, #000)")
	flat := Parse("#ff0000")

	a := r.Combine(CandidatesOf(grad, flat))
	b := r.Combine(CandidatesOf(flat, grad))

	assert.Equal(t, a, b)
	assert.Equal(t, "linear-gradient(90deg, #fff, #000)", a.Value)
	assert.True(t, a.IsGradient)
}

func TestCandidatesOfFirstWinsWithinSlot(t *testing.T) {
	c := CandidatesOf(Unset(), Literal("#111"), Token("color-primary"), Gradient("radial-gradient(red, blue)"))
	assert.Equal(t, Literal("#111"), c.Color)
	assert.Equal(t, Gradient("radial-gradient(red, blue)"), c.Gradient)
	assert.False(t, c.Base.IsSet())
}

func TestShapeAlwaysCarriesDefault(t *testing.T) {
	r := NewResolver(Static(testTheme()), nil)

	p := r.Shape("radius", "", "radius-md")
	assert.Equal(t, CategoryShape, p.Category)
	assert.Equal(t, Resolved{Value: "6px", Set: true}, p.Value)

	p = r.Shape("radius", "12px", "radius-md")
	assert.Equal(t, "12px", p.Value.Value)

	p = r.Shape("shadow", "", "")
	assert.False(t, p.Value.Set)
}
