package composition

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/uikit/internal/selection"
)

func newTabsGroup(t *testing.T, current string) *Group {
	t.Helper()
	sel := selection.New(selection.Options[string]{Default: current, Candidates: []string{"a", "b", "c"}})
	return NewGroup(sel, NewExpansionSet(false), nil)
}

func TestFromWithoutProviderFailsFast(t *testing.T) {
	_, err := From(context.Background(), "tabs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoProvider))

	var mpe *MissingProviderError
	require.True(t, errors.As(err, &mpe))
	assert.Equal(t, "tabs", mpe.Scope)
}

func TestMustFromPanicsWithDescriptiveError(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.Equal(t, "tab must be rendered inside a tabs container: no provider in context", err.Error())
	}()
	MustFrom(context.Background(), "tabs", "tab")
}

func TestProvideAndRead(t *testing.T) {
	g := newTabsGroup(t, "b")
	ctx := Provide(context.Background(), "tabs", g)

	ch, err := From(ctx, "tabs")
	require.NoError(t, err)
	assert.Equal(t, "b", ch.Current())

	// A different scope is not satisfied by this provider
	_, err = From(ctx, "accordion")
	assert.Error(t, err)
}

func TestNearestProviderWins(t *testing.T) {
	outer := newTabsGroup(t, "a")
	inner := newTabsGroup(t, "c")

	ctx := Provide(context.Background(), "tabs", outer)
	nested := Provide(ctx, "tabs", inner)

	assert.Equal(t, "a", MustFrom(ctx, "tabs", "tab").Current())
	assert.Equal(t, "c", MustFrom(nested, "tabs", "tab").Current())
}

func TestPartsObserveParentUpdatesImmediately(t *testing.T) {
	g := newTabsGroup(t, "a")
	ctx := Provide(context.Background(), "tabs", g)

	require.NoError(t, g.SetCurrent("c"))

	st, err := Resolve(ctx, "tabs", "c", Overrides{})
	require.NoError(t, err)
	assert.True(t, st.Active)

	st, err = Resolve(ctx, "tabs", "a", Overrides{})
	require.NoError(t, err)
	assert.False(t, st.Active)
}

func TestResolveOverrides(t *testing.T) {
	yes, no := true, false
	g := newTabsGroup(t, "a")
	g.ToggleExpansion("a")
	ctx := Provide(context.Background(), "tabs", g)

	st, err := Resolve(ctx, "tabs", "a", Overrides{Active: &no})
	require.NoError(t, err)
	assert.False(t, st.Active)
	assert.True(t, st.Expanded)

	st, err = Resolve(ctx, "tabs", "b", Overrides{Expanded: &yes})
	require.NoError(t, err)
	assert.False(t, st.Active)
	assert.True(t, st.Expanded)

	// Fully overridden fragments work without a provider
	st, err = Resolve(context.Background(), "tabs", "x", Overrides{Active: &yes, Expanded: &no})
	require.NoError(t, err)
	assert.Equal(t, PartState{ID: "x", Active: true}, st)

	// Partially overridden fragments still need one
	_, err = Resolve(context.Background(), "tabs", "x", Overrides{Active: &yes})
	assert.True(t, errors.Is(err, ErrNoProvider))
}

func TestGroupExpansionNotifications(t *testing.T) {
	var events []string
	g := NewGroup(nil, nil, func(id string, expanded bool) {
		if expanded {
			events = append(events, "+"+id)
		} else {
			events = append(events, "-"+id)
		}
	})

	g.ToggleExpansion("settings")
	g.ToggleExpansion("billing")
	g.ToggleExpansion("settings")

	assert.Equal(t, []string{"+settings", "+billing", "-settings"}, events)
	assert.Equal(t, []string{"billing"}, g.ExpansionSet())
	assert.Equal(t, "", g.Current())
	assert.NoError(t, g.SetCurrent("anything"))
}

func TestGroupExclusiveExpansionNotifications(t *testing.T) {
	var events []string
	g := NewGroup(nil, NewExpansionSet(true, "a"), func(id string, expanded bool) {
		if expanded {
			events = append(events, "+"+id)
		} else {
			events = append(events, "-"+id)
		}
	})

	g.ToggleExpansion("b")
	g.ToggleExpansion("b")

	assert.Equal(t, []string{"-a", "+b", "-b"}, events)
	assert.Empty(t, g.ExpansionSet())
}
