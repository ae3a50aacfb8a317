package widget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/uikit/internal/composition"
	"github.com/yacobolo/uikit/internal/selection"
)

func threeTabs() []TabItem {
	return []TabItem{
		{ID: "overview", Label: "Overview"},
		{ID: "billing", Label: "Billing", Disabled: true},
		{ID: "logs", Label: "Logs", Closable: true},
	}
}

func TestTabsUncontrolled(t *testing.T) {
	var changes []string
	tabs, err := NewTabs(TabsConfig{
		ID:       "main",
		Items:    threeTabs(),
		OnChange: func(id string) { changes = append(changes, id) },
	}, testResolver())
	require.NoError(t, err)

	assert.Equal(t, "overview", tabs.Current(), "empty default reconciles to first enabled tab")
	assert.Equal(t, selection.Uncontrolled, tabs.Mode())

	require.NoError(t, tabs.Select("logs"))
	assert.Equal(t, "logs", tabs.Current())

	err = tabs.Select("billing")
	assert.ErrorIs(t, err, ErrDisabledItem)
	assert.Equal(t, "logs", tabs.Current())

	assert.Error(t, tabs.Select("nowhere"))
	assert.Equal(t, []string{"overview", "logs"}, changes)
}

func TestTabsControlled(t *testing.T) {
	var changes []string
	tabs, err := NewTabs(TabsConfig{
		ID:       "main",
		Items:    threeTabs(),
		Value:    strPtr("overview"),
		OnChange: func(id string) { changes = append(changes, id) },
	}, testResolver())
	require.NoError(t, err)

	require.NoError(t, tabs.Select("logs"))
	assert.Equal(t, "overview", tabs.Current(), "controlled tabs wait for the host")
	assert.Equal(t, []string{"logs"}, changes)

	tabs.SetValue(strPtr("logs"))
	assert.Equal(t, "logs", tabs.Current())
}

func TestTabsClose(t *testing.T) {
	var closed []string
	tabs, err := NewTabs(TabsConfig{
		ID:           "main",
		Items:        threeTabs(),
		DefaultValue: "logs",
		OnClose:      func(id string) { closed = append(closed, id) },
	}, testResolver())
	require.NoError(t, err)

	assert.ErrorIs(t, tabs.Close("overview"), ErrNotClosable)
	assert.Error(t, tabs.Close("nowhere"))

	require.NoError(t, tabs.Close("logs"))
	assert.Equal(t, []string{"logs"}, closed)
	assert.Len(t, tabs.Items(), 3, "close only requests removal")

	tabs.SetItems(threeTabs()[:2])
	assert.Equal(t, "overview", tabs.Current(), "removed selection reconciles")
}

func TestTabParts(t *testing.T) {
	tabs, err := NewTabs(TabsConfig{ID: "main", Items: threeTabs(), DefaultValue: "logs"}, testResolver())
	require.NoError(t, err)

	ctx := tabs.Provide(context.Background())

	st, err := Tab(ctx, "logs", composition.Overrides{})
	require.NoError(t, err)
	assert.True(t, st.Active)

	st, err = Tab(ctx, "overview", composition.Overrides{})
	require.NoError(t, err)
	assert.False(t, st.Active)

	require.NoError(t, tabs.Select("overview"))
	st, err = Tab(ctx, "overview", composition.Overrides{})
	require.NoError(t, err)
	assert.True(t, st.Active, "parts read the live selection")

	_, err = Tab(context.Background(), "logs", composition.Overrides{})
	assert.ErrorIs(t, err, composition.ErrNoProvider)

	st, err = Tab(context.Background(), "logs", composition.Overrides{Active: boolPtr(true), Expanded: boolPtr(false)})
	require.NoError(t, err)
	assert.True(t, st.Active)
}

func TestTabsAttributes(t *testing.T) {
	tabs, err := NewTabs(TabsConfig{
		ID:          "main",
		Orientation: "vertical",
		Appearance: Appearance{
			Gradients: map[string]string{"indicator": "gradient-primary"},
		},
	}, testResolver())
	require.NoError(t, err)

	attrs, err := tabs.Attributes()
	require.NoError(t, err)
	assert.Equal(t, "tabs", attrs.Component)
	assert.ElementsMatch(t, []string{"tabs", "tabs--line", "tabs--vertical", "tabs--indicator-gradient"}, attrs.Classes)
	assert.Equal(t, gradientPrimary, attrs.Variables["tabs-custom-indicator"])
}
