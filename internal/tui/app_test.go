package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/demohost/internal/demo"
	"github.com/jask/demohost/internal/host"
	"github.com/jask/demohost/internal/persist"
	"github.com/jask/demohost/internal/ui"
)

type stubDemo struct {
	name    string
	repaint bool
}

func (d *stubDemo) Name() string { return d.name }

func (d *stubDemo) Render(ctx *ui.Context, open *bool) {
	if d.repaint {
		ctx.RequestRepaint()
	}
	ui.NewWindow(d.name).Open(open).Show(ctx, func(u *ui.Ui) { u.Label(d.name) })
}

func newTestApp(t *testing.T, store persist.Storage, log *zap.Logger, opts Options, demos ...demo.Demo) *App {
	t.Helper()
	if log == nil {
		log = zaptest.NewLogger(t)
	}
	if len(demos) == 0 {
		demos = []demo.Demo{&stubDemo{name: demo.DefaultOpen}, &stubDemo{name: "Alpha"}}
	}
	h := host.New(demo.NewRegistry(demos...), host.Options{})
	return New(context.Background(), h, ui.NewContext(ui.DefaultStyle()), store, log, opts)
}

// load runs the initial state load synchronously.
func load(t *testing.T, a *App) {
	t.Helper()
	msg := a.loadState()()
	a.Update(msg)
	require.True(t, a.Loaded())
}

func TestLoadRestoresPersistedState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := persist.NewMemory()
	saved := host.State{Demos: demo.State{Open: []string{"Alpha"}}, Windows: host.OpenWindows{Memory: true}}
	require.NoError(t, persist.SaveRecord(ctx, store, persist.StateKey, saved))

	a := newTestApp(t, store, nil, Options{})
	load(t, a)
	require.Equal(t, saved, a.host.State())
	require.Equal(t, "Ready", a.status)
}

func TestCorruptStateFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := persist.NewMemory()
	require.NoError(t, store.SetString(ctx, persist.StateKey, "demos = ["))

	core, logs := observer.New(zapcore.WarnLevel)
	a := newTestApp(t, store, zap.New(core), Options{})
	load(t, a)
	require.Equal(t, host.DefaultState(), a.host.State())
	require.Equal(t, 1, logs.FilterMessage("persisted window state unreadable, using defaults").Len())
}

func TestOpenOptionAppliesAfterRestore(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, persist.NewMemory(), nil, Options{Open: []string{"Alpha"}})
	load(t, a)
	require.ElementsMatch(t, []string{"Alpha", demo.DefaultOpen}, a.host.Demos().Open())
}

func TestNothingSavedBeforeLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := persist.NewMemory()
	a := newTestApp(t, store, nil, Options{})

	require.Nil(t, a.saveState(true))
	require.NoError(t, a.Save(ctx))
	_, ok, err := store.GetString(ctx, persist.StateKey)
	require.NoError(t, err)
	require.False(t, ok)

	load(t, a)
	require.NoError(t, a.Save(ctx))
	_, ok, err = store.GetString(ctx, persist.StateKey)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSaveKeyWritesState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := persist.NewMemory()
	a := newTestApp(t, store, nil, Options{})
	load(t, a)
	a.host.Demos().SetOpen("Alpha", true)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg := cmd()
	saved, ok := msg.(stateSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	a.Update(msg)
	require.Equal(t, "Window state saved", a.status)

	var got host.State
	found, err := persist.LoadRecord(ctx, store, persist.StateKey, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.ElementsMatch(t, []string{"Alpha", demo.DefaultOpen}, got.Demos.Open)
}

func TestResetKeyRestoresDefaults(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, persist.NewMemory(), nil, Options{})
	load(t, a)
	a.host.Demos().SetOpen("Alpha", true)
	a.host.OpenWindows().Settings = true

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, host.DefaultState(), a.host.State())
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, persist.NewMemory(), nil, Options{})
	load(t, a)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)
	require.Equal(t, "Goodbye\n", a.View())
}

func TestKeysDriveFrames(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, persist.NewMemory(), nil, Options{})
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	load(t, a)
	before := a.ui.Frame()

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, before+1, a.ui.Frame())
	require.False(t, a.ui.Memory().Focus.IsZero())
	require.Equal(t, "tab", a.ui.LastKey())
	require.Contains(t, a.View(), "focus")
}

func TestRepaintIsScheduledOnce(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, persist.NewMemory(), nil, Options{RepaintInterval: time.Millisecond},
		&stubDemo{name: demo.DefaultOpen, repaint: true})
	load(t, a)
	require.True(t, a.repaintPending)

	require.Nil(t, a.frame(ui.Input{}), "a pending repaint is not scheduled twice")

	_, cmd := a.Update(repaintMsg{})
	require.NotNil(t, cmd)
	require.True(t, a.repaintPending)
}

func TestSaveErrorShowsInStatus(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, persist.NewMemory(), nil, Options{})
	load(t, a)
	a.Update(stateSavedMsg{err: context.DeadlineExceeded})
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "window state not saved")
}

func TestFocusedTextFieldGetsShortcutLetters(t *testing.T) {
	t.Parallel()

	field := &textDemo{}
	a := newTestApp(t, persist.NewMemory(), nil, Options{}, field)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	load(t, a)

	// side panel widgets come first; walk to the text field
	for i := 0; i < 40 && !a.ui.WantsKeyboardInput(); i++ {
		a.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	require.True(t, a.ui.WantsKeyboardInput())

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.False(t, a.quitting)
	require.Equal(t, "q", field.text)
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		require.False(t, isQuit)
	}

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, a.quitting, "ctrl chords still reach the shortcuts")
	require.NotNil(t, cmd)
}

type textDemo struct{ text string }

func (d *textDemo) Name() string { return demo.DefaultOpen }

func (d *textDemo) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(d.Name()).Open(open).Show(ctx, func(u *ui.Ui) { u.TextEdit(&d.text, "Field") })
}
