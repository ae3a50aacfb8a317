// Package composition publishes a container's selection and expansion state
// to parts declared inside it, so a part can ask "am I active" without the
// container threading props through every layer.
//
// Channels travel in a context.Context keyed by scope (the container's
// component name). Several widget instances coexist because each one
// provides its own channel into its own subtree; the nearest provider of a
// scope wins.
package composition

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoProvider is wrapped by MissingProviderError.
var ErrNoProvider = errors.New("no provider in context")

// MissingProviderError reports a part used outside its container.
type MissingProviderError struct {
	Scope string // "tabs"
	Part  string // "tab"
}

func (e *MissingProviderError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("%s: %v; render it inside a %s container", e.Scope, ErrNoProvider, e.Scope)
	}
	return fmt.Sprintf("%s must be rendered inside a %s container: %v", e.Part, e.Scope, ErrNoProvider)
}

func (e *MissingProviderError) Unwrap() error { return ErrNoProvider }

// Channel is the capability a container exposes to its parts.
type Channel interface {
	Current() string
	SetCurrent(id string) error
	ExpansionSet() []string
	IsExpanded(id string) bool
	ToggleExpansion(id string)
}

type scopeKey string

// Provide returns a context carrying ch for scope.
func Provide(ctx context.Context, scope string, ch Channel) context.Context {
	return context.WithValue(ctx, scopeKey(scope), ch)
}

// From returns the nearest channel for scope.
func From(ctx context.Context, scope string) (Channel, error) {
	return from(ctx, scope, "")
}

// MustFrom is like From but panics when no provider exists. Parts that
// cannot render meaningfully outside their container use it.
func MustFrom(ctx context.Context, scope, part string) Channel {
	ch, err := from(ctx, scope, part)
	if err != nil {
		panic(err)
	}
	return ch
}

func from(ctx context.Context, scope, part string) (Channel, error) {
	if ctx != nil {
		if ch, ok := ctx.Value(scopeKey(scope)).(Channel); ok && ch != nil {
			return ch, nil
		}
	}
	return nil, &MissingProviderError{Scope: scope, Part: part}
}

// Overrides are explicit values a part may carry. They win over the channel,
// which lets a fragment be reused outside composition.
type Overrides struct {
	Active   *bool
	Expanded *bool
}

// PartState is what a part needs to render.
type PartState struct {
	ID       string
	Active   bool
	Expanded bool
}

// Resolve computes a part's state. The channel is consulted only for values
// not overridden; a fully overridden part needs no provider.
func Resolve(ctx context.Context, scope, id string, ov Overrides) (PartState, error) {
	st := PartState{ID: id}
	if ov.Active != nil && ov.Expanded != nil {
		st.Active, st.Expanded = *ov.Active, *ov.Expanded
		return st, nil
	}

	ch, err := from(ctx, scope, id)
	if err != nil {
		return PartState{}, err
	}

	if ov.Active != nil {
		st.Active = *ov.Active
	} else {
		st.Active = ch.Current() == id
	}
	if ov.Expanded != nil {
		st.Expanded = *ov.Expanded
	} else {
		st.Expanded = ch.IsExpanded(id)
	}
	return st, nil
}
