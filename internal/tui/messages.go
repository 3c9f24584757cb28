package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/demohost/internal/host"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type stateLoadedMsg struct {
	state host.State
	found bool
	err   error
}

type stateSavedMsg struct {
	manual bool
	err    error
}

type autosaveMsg struct{}

type repaintMsg struct{}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}
