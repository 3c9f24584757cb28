package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestKeyRegistryAction(t *testing.T) {
	t.Parallel()

	r := NewKeyRegistry(DefaultBindings())
	require.Equal(t, CmdOrganizeWindows, r.Action(tea.KeyMsg{Type: tea.KeyCtrlO}))
	require.Equal(t, CmdClearMemory, r.Action(tea.KeyMsg{Type: tea.KeyCtrlL}))
	require.Equal(t, CmdQuit, r.Action(tea.KeyMsg{Type: tea.KeyCtrlC}))
	require.Empty(t, r.Action(tea.KeyMsg{Type: tea.KeyTab}), "navigation keys reach the UI")
	require.Empty(t, r.Action(tea.KeyMsg{Type: tea.KeyEnter}))

	r.Register(KeyBinding{Keys: []string{"F1"}, Action: "help"})
	require.Equal(t, "help", r.Action(tea.KeyMsg{Type: tea.KeyF1}))
}

func TestEveryBoundActionHasACommand(t *testing.T) {
	t.Parallel()

	cmds := NewCommandRegistry(DefaultCommands())
	ids := map[string]bool{}
	for _, c := range cmds.List() {
		ids[c.ID] = true
	}
	for _, b := range DefaultBindings() {
		if b.Action != "" {
			require.True(t, ids[b.Action], "binding %v has no command", b.Keys)
		}
	}
}

func TestUnknownCommandReportsStatus(t *testing.T) {
	t.Parallel()

	cmds := NewCommandRegistry(DefaultCommands())
	msg := cmds.Execute("nope", nil)()
	require.Equal(t, StatusMsg{Text: "Unknown command: nope"}, msg)
}
