package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderFooter lists the key bindings in the current theme. Bindings the
// terminal is too narrow for are dropped from the end.
func renderFooter(a *App) string {
	vis := a.ui.Style().Visuals()
	bg := vis.Extreme
	keyStyle := lipgloss.NewStyle().Foreground(vis.Accent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(vis.Muted).Background(bg)
	gap := lipgloss.NewStyle().Background(bg).Render("  ")

	width := max(1, a.width)
	line := ""
	for _, b := range a.keys.Bindings() {
		if len(b.Keys) == 0 {
			continue
		}
		h := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description)).Help()
		part := keyStyle.Render(h.Key) + descStyle.Render(" "+h.Desc)
		if line != "" {
			part = gap + part
		}
		if ansi.StringWidth(line+part) > width {
			break
		}
		line += part
	}
	return renderBar(lipgloss.NewStyle(), width, line, "", bg)
}

// renderStatusBar shows the last status message on the left and a summary
// of the host on the right.
func renderStatusBar(a *App) string {
	vis := a.ui.Style().Visuals()
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	fg := vis.Success
	if a.statusErr {
		fg = vis.Error
	}
	right := fmt.Sprintf("%d open  frame %d", len(a.host.Demos().Open()), a.ui.Frame())
	if !a.loaded {
		right = "loading"
	}
	return renderBar(lipgloss.NewStyle().Foreground(fg), max(1, a.width), msg,
		lipgloss.NewStyle().Foreground(vis.Muted).Render(right), vis.Panel)
}

// renderBar fills one row of width cells: left is truncated first so right
// stays visible.
func renderBar(style lipgloss.Style, width int, left, right string, bg lipgloss.TerminalColor) string {
	left = strings.ReplaceAll(left, "\n", " ")
	rightW := ansi.StringWidth(right)
	if rightW >= width {
		right, rightW = "", 0
	}
	room := width - rightW
	if rightW > 0 {
		room--
	}
	left = ansi.Truncate(left, max(0, room), "…")
	pad := max(0, width-ansi.StringWidth(left)-rightW)
	return style.Background(bg).Render(left+strings.Repeat(" ", pad)) +
		lipgloss.NewStyle().Background(bg).Render(right)
}
