package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionSetToggle(t *testing.T) {
	assert := assert.New(t)

	s := NewSelectionSet()
	assert.Equal(0, s.Len())

	assert.True(s.Toggle("webapp/a.go.tt"))
	assert.True(s.Contains("webapp/a.go.tt"))
	assert.Equal(1, s.Len())

	// Toggling again removes the path.
	assert.False(s.Toggle("webapp/a.go.tt"))
	assert.False(s.Contains("webapp/a.go.tt"))
	assert.Equal(0, s.Len())
}

func TestSelectionSetValuesSorted(t *testing.T) {
	assert := assert.New(t)

	s := NewSelectionSet()
	s.Toggle("b")
	s.Toggle("a")
	s.Toggle("c")
	assert.Equal([]string{"a", "b", "c"}, s.Values())
}
