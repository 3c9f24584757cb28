package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryResetForgetsEverything(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	a := IDFrom("a")
	m.area(a, "A")
	m.setScroll(a, 3)
	m.setExpanded(a, true)
	m.Focus = a

	m.ResetAreas()
	require.Zero(t, m.AreaCount())
	require.Equal(t, 1, m.ScrollCount(), "ResetAreas keeps scroll offsets")
	require.Equal(t, a, m.Focus)

	m.Reset()
	require.Zero(t, m.ScrollCount())
	require.Zero(t, m.CollapsedCount())
	require.True(t, m.Focus.IsZero())
}

func TestMemoryRaiseOrdersBackToFront(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	a, b, c := IDFrom("a"), IDFrom("b"), IDFrom("c")
	m.area(a, "A")
	m.area(b, "B")
	m.area(c, "C")
	m.raise(a)

	var titles []string
	for _, area := range m.Areas() {
		titles = append(titles, area.Title)
	}
	require.Equal(t, []string{"B", "C", "A"}, titles)
	require.Equal(t, 2, m.layer(a))
	require.Equal(t, -1, m.layer(IDFrom("missing")))
}
