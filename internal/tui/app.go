package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/demohost/internal/host"
	"github.com/jask/demohost/internal/persist"
	"github.com/jask/demohost/internal/ui"
)

// Options tune the event loop around the host.
type Options struct {
	AutosaveInterval time.Duration
	RepaintInterval  time.Duration
	// Open lists demos to open on top of the restored state.
	Open []string
}

// App drives a host.DemoWindows from bubbletea: every key press or repaint
// runs one UI frame.
type App struct {
	ctx      context.Context
	host     *host.DemoWindows
	ui       *ui.Context
	store    persist.Storage
	log      *zap.Logger
	keys     *KeyRegistry
	commands *CommandRegistry
	opts     Options

	width          int
	height         int
	view           string
	status         string
	statusErr      bool
	loaded         bool
	repaintPending bool
	quitting       bool
}

func New(ctx context.Context, h *host.DemoWindows, uiCtx *ui.Context, store persist.Storage, log *zap.Logger, opts Options) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.RepaintInterval <= 0 {
		opts.RepaintInterval = 100 * time.Millisecond
	}
	return &App{
		ctx:      ctx,
		host:     h,
		ui:       uiCtx,
		store:    store,
		log:      log,
		keys:     NewKeyRegistry(DefaultBindings()),
		commands: NewCommandRegistry(DefaultCommands()),
		opts:     opts,
		status:   "Loading window state…",
		width:    100,
		height:   32,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadState(), a.autosaveTick())
}

func (a *App) SetStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) SetError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

// Loaded reports whether persisted state has been restored (or defaulted).
func (a *App) Loaded() bool { return a.loaded }

func (a *App) loadState() tea.Cmd {
	return func() tea.Msg {
		st := host.DefaultState()
		found, err := persist.LoadRecord(a.ctx, a.store, persist.StateKey, &st)
		if err != nil {
			return stateLoadedMsg{state: host.DefaultState(), found: found, err: err}
		}
		return stateLoadedMsg{state: st, found: found}
	}
}

func (a *App) saveState(manual bool) tea.Cmd {
	if !a.loaded {
		return nil
	}
	st := a.host.State()
	return func() tea.Msg {
		return stateSavedMsg{manual: manual, err: persist.SaveRecord(a.ctx, a.store, persist.StateKey, st)}
	}
}

// Save writes the current state synchronously. It does nothing before the
// persisted state was loaded, so a failed start never overwrites it.
func (a *App) Save(ctx context.Context) error {
	if !a.loaded {
		return nil
	}
	return persist.SaveRecord(ctx, a.store, persist.StateKey, a.host.State())
}

func (a *App) autosaveTick() tea.Cmd {
	if a.opts.AutosaveInterval <= 0 {
		return nil
	}
	return tea.Tick(a.opts.AutosaveInterval, func(time.Time) tea.Msg { return autosaveMsg{} })
}

// frame runs one UI frame with in as its input.
func (a *App) frame(in ui.Input) tea.Cmd {
	a.ui.BeginFrame(in, a.width, max(1, a.height-2))
	a.host.Render(a.ui)
	a.view = a.ui.EndFrame()
	if a.ui.RepaintRequested() && !a.repaintPending {
		a.repaintPending = true
		return tea.Tick(a.opts.RepaintInterval, func(time.Time) tea.Msg { return repaintMsg{} })
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, a.frame(ui.Input{})
	case tea.KeyMsg:
		// a focused text field gets plain keys, shortcuts keep ctrl chords
		if a.ui.WantsKeyboardInput() && ui.IsTextKey(m) {
			return a, a.frame(ui.Input{Key: m.String(), Msg: m})
		}
		if action := a.keys.Action(m); action != "" {
			return a, a.commands.Execute(action, a)
		}
		return a, a.frame(ui.Input{Key: m.String(), Msg: m})
	case stateLoadedMsg:
		if m.err != nil {
			a.log.Warn("persisted window state unreadable, using defaults", zap.Error(m.err))
		}
		a.host.Restore(m.state)
		for _, name := range a.opts.Open {
			a.host.Demos().SetOpen(name, true)
		}
		a.loaded = true
		a.log.Debug("window state restored",
			zap.Bool("found", m.found),
			zap.Strings("open", a.host.Demos().Open()))
		a.SetStatus("Ready")
		return a, a.frame(ui.Input{})
	case stateSavedMsg:
		if m.err != nil {
			a.log.Warn("save window state", zap.Error(m.err))
			a.SetError(fmt.Errorf("window state not saved: %w", m.err))
			return a, nil
		}
		a.log.Debug("window state saved", zap.Bool("manual", m.manual))
		if m.manual {
			a.SetStatus("Window state saved")
		}
		return a, nil
	case autosaveMsg:
		return a, tea.Batch(a.saveState(false), a.autosaveTick())
	case repaintMsg:
		a.repaintPending = false
		return a, a.frame(ui.Input{})
	case StatusMsg:
		a.status = m.Text
		a.statusErr = m.IsErr
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	return strings.Join([]string{a.view, renderStatusBar(a), renderFooter(a)}, "\n")
}
