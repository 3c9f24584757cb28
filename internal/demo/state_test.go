package demo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/demohost/internal/demo"
	"github.com/jask/demohost/internal/persist"
	"github.com/jask/demohost/internal/ui"
)

type namedDemo string

func (d namedDemo) Name() string                      { return string(d) }
func (d namedDemo) Render(ctx *ui.Context, open *bool) {}

func TestOpenSetRoundTripThroughStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for _, names := range [][]string{
		{},
		{"Widget Gallery"},
		{"Plot", "Alpha", "name with \"quotes\"", "Ünïcode"},
	} {
		r := demo.NewRegistry(namedDemo("Alpha"), namedDemo("Plot"))
		r.Restore(demo.State{Open: []string{}})
		for i := len(names) - 1; i >= 0; i-- {
			r.SetOpen(names[i], true)
		}

		st := persist.NewMemory()
		require.NoError(t, persist.SaveRecord(ctx, st, persist.StateKey, r.State()))

		var got demo.State
		found, err := persist.LoadRecord(ctx, st, persist.StateKey, &got)
		require.NoError(t, err)
		require.True(t, found)

		again := demo.NewRegistry(namedDemo("Alpha"), namedDemo("Plot"))
		again.Restore(got)
		require.Equal(t, r.Open(), again.Open())
		require.Len(t, again.Open(), len(names))
	}
}

func TestSavedOpenSetIsSorted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := demo.NewRegistry(namedDemo("b"), namedDemo("a"))
	r.Restore(demo.State{Open: []string{"b", "a"}})

	st := persist.NewMemory()
	require.NoError(t, persist.SaveRecord(ctx, st, persist.StateKey, r.State()))
	raw, ok, err := st.GetString(ctx, persist.StateKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "open = [\"a\", \"b\"]\n", raw)
}

func TestGarbageOpenSetIsRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := persist.NewMemory()
	require.NoError(t, st.SetString(ctx, persist.StateKey, "open = [unterminated"))

	got := demo.DefaultState()
	found, err := persist.LoadRecord(ctx, st, persist.StateKey, &got)
	require.True(t, found)
	require.Error(t, err)
	require.Equal(t, demo.DefaultState(), got, "a failed decode leaves the record alone")
}

func TestUnknownSavedNamesRestoreQuietly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := persist.NewMemory()
	require.NoError(t, st.SetString(ctx, persist.StateKey, "open = [\"Removed Demo\", \"Alpha\"]\n"))

	var got demo.State
	_, err := persist.LoadRecord(ctx, st, persist.StateKey, &got)
	require.NoError(t, err)

	r := demo.NewRegistry(namedDemo("Alpha"))
	r.Restore(got)
	require.True(t, r.IsOpen("Alpha"))
	require.Equal(t, []string{"Alpha", "Removed Demo"}, r.Open())
}
