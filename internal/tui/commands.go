package tui

import (
	"cmp"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/demohost/internal/host"
	"github.com/jask/demohost/internal/ui"
)

const (
	CmdQuit            = "quit"
	CmdSaveState       = "save-state"
	CmdResetState      = "reset-state"
	CmdOrganizeWindows = "organize-windows"
	CmdClearMemory     = "clear-memory"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Execute     func(a *App) tea.Cmd
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// List returns commands sorted by name.
func (r *CommandRegistry) List() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Command) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

func (r *CommandRegistry) Execute(id string, a *App) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(a)
}

// DefaultCommands are the global commands bound in DefaultBindings.
func DefaultCommands() []Command {
	return []Command{
		{
			ID:          CmdQuit,
			Name:        "Quit",
			Description: "Save state and exit",
			Execute: func(a *App) tea.Cmd {
				a.quitting = true
				return tea.Quit
			},
		},
		{
			ID:          CmdSaveState,
			Name:        "Save state",
			Description: "Write the open windows to storage now",
			Execute: func(a *App) tea.Cmd {
				return a.saveState(true)
			},
		},
		{
			ID:          CmdResetState,
			Name:        "Reset state",
			Description: "Close everything except the default demo",
			Execute: func(a *App) tea.Cmd {
				a.host.Restore(host.DefaultState())
				a.SetStatus("Window state reset")
				return a.frame(ui.Input{})
			},
		},
		{
			ID:          CmdOrganizeWindows,
			Name:        "Organize windows",
			Description: "Cascade all open windows again",
			Execute: func(a *App) tea.Cmd {
				a.host.OrganizeWindows(a.ui)
				a.SetStatus("Windows organized")
				return a.frame(ui.Input{})
			},
		},
		{
			ID:          CmdClearMemory,
			Name:        "Clear UI memory",
			Description: "Forget scroll, collapsing headers, focus and placement",
			Execute: func(a *App) tea.Cmd {
				a.host.ClearMemory(a.ui)
				a.SetStatus("UI memory cleared")
				return a.frame(ui.Input{})
			},
		},
	}
}
