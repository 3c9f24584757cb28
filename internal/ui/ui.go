package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ui lays widgets out top to bottom inside a panel or window.
type Ui struct {
	ctx       *Context
	id        ID
	width     int
	lines     []string
	row       []string
	inRow     bool
	focusLine int
}

func newUi(ctx *Context, id ID, width int) *Ui {
	return &Ui{ctx: ctx, id: id, width: max(1, width), focusLine: -1}
}

func (u *Ui) Context() *Context { return u.ctx }

// Width is the number of cells available for content.
func (u *Ui) Width() int { return u.width }

func (u *Ui) visuals() Visuals { return u.ctx.style.Visuals() }

func (u *Ui) push(s string) {
	if u.inRow {
		u.row = append(u.row, s)
		return
	}
	u.lines = append(u.lines, strings.Split(s, "\n")...)
}

func (u *Ui) markFocus() {
	u.focusLine = len(u.lines)
}

func (u *Ui) widget(id ID, text string, focused bool) {
	vis := u.visuals()
	if focused {
		u.markFocus()
		text = lipgloss.NewStyle().Foreground(vis.Extreme).Background(vis.Focus).Render(text)
		if u.ctx.style.DebugIDs {
			text += lipgloss.NewStyle().Foreground(vis.Muted).Render(" #" + id.Short())
		}
	} else {
		text = lipgloss.NewStyle().Foreground(vis.Text).Render(text)
	}
	u.push(text)
}

// Heading adds a bold title line.
func (u *Ui) Heading(text string) {
	u.push(lipgloss.NewStyle().Foreground(u.visuals().Strong).Bold(true).Render(text))
}

// Label adds wrapped text.
func (u *Ui) Label(text string) {
	style := lipgloss.NewStyle().Foreground(u.visuals().Text)
	if !u.inRow {
		style = style.Width(u.width)
	}
	u.push(style.Render(text))
}

// Monospace adds text as is, truncated to the available width.
func (u *Ui) Monospace(text string) {
	for _, line := range strings.Split(text, "\n") {
		u.push(lipgloss.NewStyle().Foreground(u.visuals().Text).Render(ansi.Truncate(line, u.width, "")))
	}
}

// Colored adds a single line in the given color.
func (u *Ui) Colored(color lipgloss.TerminalColor, text string) {
	u.push(lipgloss.NewStyle().Foreground(color).Render(text))
}

// Weak adds a muted line.
func (u *Ui) Weak(text string) {
	u.Colored(u.visuals().Muted, text)
}

func (u *Ui) Separator() {
	style := lipgloss.NewStyle().Foreground(u.visuals().Border)
	if u.inRow {
		u.push(style.Render("│"))
		return
	}
	u.push(style.Render(strings.Repeat("─", u.width)))
}

// Hyperlink adds an OSC 8 link; terminals that support it make it clickable.
func (u *Ui) Hyperlink(text, url string) {
	styled := lipgloss.NewStyle().Foreground(u.visuals().Link).Underline(true).Render(text)
	u.push(ansi.SetHyperlink(url) + styled + ansi.ResetHyperlink())
}

// Add appends a pre-rendered block such as a chart or table.
func (u *Ui) Add(block string) {
	u.push(block)
}

// Checkbox toggles *value when activated and reports whether it changed.
func (u *Ui) Checkbox(value *bool, label string) bool {
	id := u.id.Child("checkbox:" + label)
	focused := u.ctx.interact(id)
	changed := focused && u.ctx.take(activateKeys...)
	if changed {
		*value = !*value
	}
	mark := "[ ]"
	if *value {
		mark = "[x]"
	}
	u.widget(id, mark+" "+label, focused)
	return changed
}

// Button reports whether it was activated this frame.
func (u *Ui) Button(label string) bool {
	id := u.id.Child("button:" + label)
	focused := u.ctx.interact(id)
	clicked := focused && u.ctx.take(activateKeys...)
	u.widget(id, "[ "+label+" ]", focused)
	return clicked
}

// RadioValue sets *current to value when activated.
func (u *Ui) RadioValue(current *string, value, label string) bool {
	id := u.id.Child("radio:" + value)
	focused := u.ctx.interact(id)
	changed := focused && u.ctx.take(activateKeys...) && *current != value
	if changed {
		*current = value
	}
	mark := "( )"
	if *current == value {
		mark = "(•)"
	}
	u.widget(id, mark+" "+label, focused)
	return changed
}

// Slider adjusts *value by step with left/right while focused. home and
// end jump to the bounds.
func (u *Ui) Slider(value *float64, lo, hi, step float64, label string) bool {
	id := u.id.Child("slider:" + label)
	focused := u.ctx.interact(id)
	before := *value
	if focused {
		switch {
		case u.ctx.take("left"):
			*value -= step
		case u.ctx.take("right"):
			*value += step
		case u.ctx.take("home"):
			*value = lo
		case u.ctx.take("end"):
			*value = hi
		}
	}
	*value = math.Max(lo, math.Min(hi, *value))

	const track = 12
	filled := 0
	if hi > lo {
		filled = int(math.Round((*value - lo) / (hi - lo) * track))
	}
	bar := strings.Repeat("━", filled) + "●" + strings.Repeat("─", track-filled)
	u.widget(id, fmt.Sprintf("%s %s %g", bar, label, *value), focused)
	return *value != before
}

// CollapsingHeader shows add indented below a toggleable header. Expansion
// state lives in Memory.
func (u *Ui) CollapsingHeader(label string, add func(u *Ui)) {
	id := u.id.Child("collapsing:" + label)
	focused := u.ctx.interact(id)
	open := u.ctx.mem.expanded(id)
	if focused && u.ctx.take(activateKeys...) {
		open = !open
		u.ctx.mem.setExpanded(id, open)
	}
	arrow := "▸ "
	if open {
		arrow = "▾ "
	}
	u.widget(id, arrow+label, focused)
	if !open {
		return
	}
	child := newUi(u.ctx, id, u.width-2)
	add(child)
	child.flushRow()
	base := len(u.lines)
	for _, line := range child.lines {
		u.lines = append(u.lines, "  "+line)
	}
	if child.focusLine >= 0 {
		u.focusLine = base + child.focusLine
	}
}

// Horizontal lays the widgets added by add out on one line.
func (u *Ui) Horizontal(add func(u *Ui)) {
	if u.inRow {
		add(u)
		return
	}
	u.inRow = true
	add(u)
	u.flushRow()
}

func (u *Ui) flushRow() {
	u.inRow = false
	if len(u.row) == 0 {
		return
	}
	line := strings.Join(u.row, " ")
	u.row = nil
	u.lines = append(u.lines, ansi.Truncate(line, u.width, ""))
}
