package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// frame draws a window border around already rendered content lines.
type frame struct {
	Title        string
	Lines        []string
	Width        int
	Height       int
	Focused      bool
	Closable     bool
	CloseFocused bool
	Footer       string
}

func (f frame) render(vis Visuals) string {
	width := max(f.Width, 8)
	h := max(f.Height, 3)

	border := vis.Border
	if f.Focused {
		border = vis.Focus
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(vis.Strong).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	closeText := ""
	if f.Closable {
		closeText = "[x]"
		if f.CloseFocused {
			closeText = lipgloss.NewStyle().Foreground(vis.Extreme).Background(vis.Focus).Render(closeText)
		} else {
			closeText = lipgloss.NewStyle().Foreground(vis.Muted).Render(closeText)
		}
	}
	closeW := ansi.StringWidth(closeText)

	titleText := " " + strings.TrimSpace(f.Title) + " "
	if room := innerWidth - closeW - 2; ansi.StringWidth(titleText) > room {
		titleText = " " + ansi.Truncate(strings.TrimSpace(f.Title), max(1, room-2), "…") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText)-closeW-1)
	top := borderStyle.Render("╭─") +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", dashes)) +
		closeText +
		borderStyle.Render("╮")

	v := borderStyle.Render("│")
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(f.Lines) {
			line = f.Lines[i]
		}
		rows = append(rows, v+" "+padRightANSI(line, contentWidth)+" "+v)
	}

	footer := ""
	if f.Footer != "" && ansi.StringWidth(f.Footer)+3 <= innerWidth {
		footer = " " + f.Footer + " "
	}
	fill := max(0, innerWidth-ansi.StringWidth(footer)-1)
	bottom := borderStyle.Render("╰"+strings.Repeat("─", fill)) +
		lipgloss.NewStyle().Foreground(vis.Muted).Render(footer) +
		borderStyle.Render(strings.Repeat("─", innerWidth-fill-ansi.StringWidth(footer))+"╯")
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// overlayAt draws overlay onto base with its top-left corner at (x, y).
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	for i, line := range strings.Split(overlay, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := padRightANSI(ansi.Truncate(target, x, ""), x)
		line = ansi.Truncate(line, max(0, width-x), "")
		pos := x + ansi.StringWidth(line)
		right := ""
		if pos < width {
			right = ansi.TruncateLeft(target, pos, "")
		}
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func fillCanvas(width, height int, style lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := style.Render(strings.Repeat(" ", width))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func padRightANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// scrollLines returns the visible slice of lines for a viewport of the given
// height, moving offset as little as needed to keep focusLine visible.
func scrollLines(lines []string, height, offset, focusLine int) ([]string, int) {
	if height <= 0 {
		return nil, 0
	}
	if focusLine >= 0 {
		if focusLine < offset {
			offset = focusLine
		}
		if focusLine >= offset+height {
			offset = focusLine - height + 1
		}
	}
	offset = max(0, min(offset, len(lines)-height))
	end := min(len(lines), offset+height)
	return lines[offset:end], offset
}
