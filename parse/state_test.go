package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Advance(t *testing.T) {
	s := NewState([]string{"-a", "b", "--c"})
	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, 3, s.Len())

	var seen []string
	for s.Advance() {
		seen = append(seen, s.CurrentArg())
	}

	assert.Equal(t, []string{"-a", "b", "--c"}, seen)
	assert.Equal(t, 2, s.Pos())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Advance(), "exhausted stream should stay exhausted")
	assert.Equal(t, "", s.CurrentArg())
}

func TestState_Peek(t *testing.T) {
	s := NewState([]string{"first", "second"})

	next, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "first", next)
	assert.Equal(t, -1, s.Pos(), "peek must not consume")

	require.True(t, s.Advance())
	require.True(t, s.Advance())
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestState_Rest(t *testing.T) {
	s := NewState([]string{"--", "-x", "--long", "plain"})
	require.True(t, s.Advance())

	assert.Equal(t, []string{"-x", "--long", "plain"}, s.Rest())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{}, s.Rest())
}

func TestState_CopiesInput(t *testing.T) {
	args := []string{"a", "b"}
	s := NewState(args)
	args[0] = "changed"

	require.True(t, s.Advance())
	assert.Equal(t, "a", s.CurrentArg())
}

func TestState_Empty(t *testing.T) {
	s := NewState(nil)
	assert.False(t, s.Advance())
	assert.Empty(t, s.Rest())
}
