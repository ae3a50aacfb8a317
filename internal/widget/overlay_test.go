package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/uikit/internal/disclosure"
)

var escKey = tea.KeyMsg{Type: tea.KeyEsc}

func TestPopoverDismissal(t *testing.T) {
	tests := []struct {
		name     string
		cfg      PopoverConfig
		msg      tea.Msg
		wantOpen bool
	}{
		{name: "escape closes", cfg: PopoverConfig{ID: "p"}, msg: escKey, wantOpen: false},
		{name: "escape kept open", cfg: PopoverConfig{ID: "p", KeepOnEscape: true}, msg: escKey, wantOpen: true},
		{name: "outside click closes", cfg: PopoverConfig{ID: "p"}, msg: OutsideClickMsg{ID: "p"}, wantOpen: false},
		{name: "broadcast outside click closes", cfg: PopoverConfig{ID: "p"}, msg: OutsideClickMsg{}, wantOpen: false},
		{name: "outside click for another popover", cfg: PopoverConfig{ID: "p"}, msg: OutsideClickMsg{ID: "q"}, wantOpen: true},
		{name: "outside click kept open", cfg: PopoverConfig{ID: "p", KeepOnOutsideClick: true}, msg: OutsideClickMsg{ID: "p"}, wantOpen: true},
		{name: "other keys ignored", cfg: PopoverConfig{ID: "p"}, msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, wantOpen: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.DefaultOpen = true
			p, err := NewPopover(tt.cfg, testResolver())
			require.NoError(t, err)

			p.Update(tt.msg)
			assert.Equal(t, tt.wantOpen, p.IsOpen())
		})
	}
}

func TestPopoverControlled(t *testing.T) {
	var changes []bool
	p, err := NewPopover(PopoverConfig{
		ID:           "p",
		Open:         boolPtr(false),
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	}, testResolver())
	require.NoError(t, err)

	p.Toggle()
	assert.False(t, p.IsOpen(), "host has not applied the change")
	assert.Equal(t, []bool{true}, changes)

	p.SetOpen(boolPtr(true))
	assert.True(t, p.IsOpen())

	attrs, err := p.Attributes()
	require.NoError(t, err)
	assert.True(t, attrs.HasClass("popover--open"))
	assert.True(t, attrs.HasClass("popover--bottom"))
}

func TestModal(t *testing.T) {
	var changes []bool
	m, err := NewModal(ModalConfig{
		ID:           "confirm",
		Appearance:   Appearance{Colors: map[string]string{"backdrop": "rgba(0, 0, 0, 0.5)"}},
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	}, testResolver())
	require.NoError(t, err)
	assert.False(t, m.IsOpen())

	m.Update(escKey)
	assert.Empty(t, changes, "closing a closed modal does nothing")

	m.Open()
	m.Update(disclosure.BackdropClickMsg{ID: "confirm"})
	assert.False(t, m.IsOpen())
	assert.Equal(t, []bool{true, false}, changes)

	attrs, err := m.Attributes()
	require.NoError(t, err)
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", attrs.Variables["modal-custom-backdrop"])
	assert.Equal(t, "32rem", attrs.Variables["modal-custom-width"])
}

func TestModalStatic(t *testing.T) {
	m, err := NewModal(ModalConfig{ID: "wizard", Static: true, DefaultOpen: true}, testResolver())
	require.NoError(t, err)

	m.Update(disclosure.BackdropClickMsg{})
	assert.True(t, m.IsOpen())

	m.Update(escKey)
	assert.False(t, m.IsOpen())
}
