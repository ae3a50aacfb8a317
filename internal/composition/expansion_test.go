package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpansionSetToggle(t *testing.T) {
	s := NewExpansionSet(false, "a")

	assert.True(t, s.Has("a"))
	expanded, collapsed := s.Toggle("b")
	assert.True(t, expanded)
	assert.Empty(t, collapsed)
	assert.Equal(t, []string{"a", "b"}, s.IDs())

	expanded, collapsed = s.Toggle("a")
	assert.False(t, expanded)
	assert.Empty(t, collapsed)
	assert.Equal(t, []string{"b"}, s.IDs())
}

func TestExpansionSetExclusive(t *testing.T) {
	s := NewExpansionSet(true, "a", "b")
	assert.Equal(t, []string{"a"}, s.IDs())

	expanded, collapsed := s.Toggle("c")
	assert.True(t, expanded)
	assert.Equal(t, []string{"a"}, collapsed)
	assert.Equal(t, []string{"c"}, s.IDs())

	expanded, collapsed = s.Toggle("c")
	assert.False(t, expanded)
	assert.Empty(t, collapsed)
	assert.Equal(t, 0, s.Len())
}

func TestExpansionSetRetain(t *testing.T) {
	s := NewExpansionSet(false, "a", "b", "c")
	s.Retain([]string{"b", "z"})
	assert.Equal(t, []string{"b"}, s.IDs())
}
