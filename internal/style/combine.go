package style

// Candidates are the competing inputs for one visual property. Precedence is
// fixed: Gradient overrides Color, Color overrides Base, and when all are
// unset the property falls through to the rendering layer default.
type Candidates struct {
	Gradient Input
	Color    Input
	Base     Input
}

// CandidatesOf files inputs into slots by kind so the precedence does not
// depend on argument order. Gradients fill the Gradient slot; literals and
// tokens fill the Color slot. The first input wins within a slot.
func CandidatesOf(inputs ...Input) Candidates {
	var c Candidates
	for _, in := range inputs {
		switch in.Kind {
		case KindGradient:
			if !c.Gradient.IsSet() {
				c.Gradient = in
			}
		case KindLiteral, KindToken:
			if !c.Color.IsSet() {
				c.Color = in
			}
		case KindUnset:
		}
	}
	return c
}

// Resolved is the single winning value for a property.
type Resolved struct {
	Value      string
	IsGradient bool
	Set        bool
}

// Combine resolves the winning candidate and classifies it.
func (r *Resolver) Combine(c Candidates) Resolved {
	for _, in := range [...]Input{c.Gradient, c.Color, c.Base} {
		v, ok := r.Resolve(in)
		if !ok {
			continue
		}
		return Resolved{Value: v, IsGradient: IsGradientValue(v), Set: true}
	}
	return Resolved{}
}

// Paint builds a paint property from its candidates.
func (r *Resolver) Paint(name string, c Candidates) Property {
	return Property{Name: name, Category: CategoryFor(name), Value: r.Combine(c)}
}

// Shape builds a size/shape property. Shape properties always carry a value:
// when raw is unset the default is resolved instead.
func (r *Resolver) Shape(name, raw, def string) Property {
	v, ok := r.ResolveString(raw)
	if !ok {
		v, ok = r.ResolveString(def)
	}
	return Property{
		Name:     name,
		Category: CategoryShape,
		Value:    Resolved{Value: v, Set: ok},
	}
}
