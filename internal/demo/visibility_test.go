package demo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewVisibilitySet()
	s.SetOpen("Alpha", true)
	s.SetOpen("Alpha", true)
	require.Equal(t, 1, s.Len())
	require.True(t, s.IsOpen("Alpha"))

	s.SetOpen("Alpha", false)
	s.SetOpen("Alpha", false)
	require.Zero(t, s.Len())
	require.False(t, s.IsOpen("Alpha"))
}

func TestNamesAreSorted(t *testing.T) {
	t.Parallel()

	s := NewVisibilitySet("b", "c", "a")
	require.Equal(t, []string{"a", "b", "c"}, s.Names())
}
