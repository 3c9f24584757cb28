package ui

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input is the single key event delivered to a frame. Key uses bubbletea
// key names ("tab", "enter", " ", "shift+up", ...). An empty Key is a
// repaint without input. Msg carries the original event for widgets that
// edit text.
type Input struct {
	Key string
	Msg tea.Msg
}

var activateKeys = []string{"enter", " ", "space"}

// Fill paints the central area behind the windows.
type Fill struct {
	// Transparent leaves the terminal background showing through.
	Transparent bool
}

// Stats describes the last completed frame.
type Stats struct {
	Frame   uint64
	Width   int
	Height  int
	Widgets int
	Windows int
	Clashes int
	Focus   ID
	LastKey string
	// TextFocus is set when the focused widget edits text.
	TextFocus bool
}

type panel struct {
	id    ID
	width int
	lines []string
}

type windowOut struct {
	id    ID
	layer int
	pos   Pos
	text  string
	w, h  int
}

// Context is the immediate-mode drawing context. A frame is one
// BeginFrame / draw calls / EndFrame sequence; widgets declared during the
// frame both handle the frame's input and produce its output.
type Context struct {
	mem   *Memory
	style Style
	input Input

	consumed bool
	frame    uint64
	width    int
	height   int
	lastKey  string

	order     []ID
	prevOrder []ID
	seen      map[ID]struct{}
	clashes   int
	textFocus bool

	side    *panel
	top     *panel
	fill    Fill
	windows []windowOut
	repaint bool

	last Stats
}

func NewContext(style Style) *Context {
	return &Context{
		mem:   NewMemory(),
		style: style,
		seen:  map[ID]struct{}{},
	}
}

func (c *Context) Memory() *Memory { return c.mem }
func (c *Context) Style() *Style   { return &c.style }
func (c *Context) Input() Input    { return c.input }
func (c *Context) Frame() uint64   { return c.frame }

// Consumed reports whether a widget or navigation already used this frame's key.
func (c *Context) Consumed() bool { return c.consumed }

// LastKey is the most recent non-empty key seen by any frame.
func (c *Context) LastKey() string { return c.lastKey }

// RequestRepaint asks the event loop for another frame soon even without input.
func (c *Context) RequestRepaint()        { c.repaint = true }
func (c *Context) RepaintRequested() bool { return c.repaint }

// WantsKeyboardInput reports whether a text field held focus at the end of
// the last frame, so plain keys should go to the UI.
func (c *Context) WantsKeyboardInput() bool { return c.last.TextFocus }

// Stats reports the previous completed frame.
func (c *Context) Stats() Stats { return c.last }

// BeginFrame starts a frame of the given size and applies focus navigation.
func (c *Context) BeginFrame(input Input, width, height int) {
	c.frame++
	c.input = input
	c.consumed = false
	c.width = max(1, width)
	c.height = max(1, height)
	if input.Key != "" {
		c.lastKey = input.Key
	}
	c.prevOrder = c.order
	c.order = nil
	c.seen = map[ID]struct{}{}
	c.clashes = 0
	c.textFocus = false
	c.side, c.top = nil, nil
	c.fill = Fill{}
	c.windows = nil
	c.repaint = false
	c.navigate()
}

func (c *Context) navigate() {
	delta := 0
	switch c.input.Key {
	case "tab", "down":
		delta = 1
	case "shift+tab", "up":
		delta = -1
	case "esc":
		c.mem.Focus = ID{}
		c.consumed = true
		return
	default:
		return
	}
	c.consumed = true
	n := len(c.prevOrder)
	if n == 0 {
		return
	}
	idx := slices.Index(c.prevOrder, c.mem.Focus)
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + delta + n) % n
	}
	c.mem.Focus = c.prevOrder[idx]
}

// interact registers an interactive widget for this frame and reports
// whether it holds focus.
func (c *Context) interact(id ID) bool {
	if _, dup := c.seen[id]; dup {
		c.clashes++
	} else {
		c.seen[id] = struct{}{}
		c.order = append(c.order, id)
	}
	return c.mem.Focus == id
}

// take consumes the frame's key when it is one of keys.
func (c *Context) take(keys ...string) bool {
	if c.consumed || c.input.Key == "" {
		return false
	}
	if slices.Contains(keys, c.input.Key) {
		c.consumed = true
		return true
	}
	return false
}

func (c *Context) focusSince(start int) bool {
	if c.mem.Focus.IsZero() || start > len(c.order) {
		return false
	}
	return slices.Contains(c.order[start:], c.mem.Focus)
}

func (c *Context) sideWidth() int {
	if c.side == nil {
		return 0
	}
	return c.side.width
}

func (c *Context) topHeight() int {
	if c.top == nil {
		return 0
	}
	return len(c.top.lines)
}

// AvailableWidth is the width of the central area given the panels drawn so far.
func (c *Context) AvailableWidth() int { return max(1, c.width-c.sideWidth()) }

// AvailableHeight is the height of the central area given the panels drawn so far.
func (c *Context) AvailableHeight() int { return max(1, c.height-c.topHeight()) }

// SidePanel draws a full-height panel on the left. Content taller than the
// screen scrolls to keep the focused widget visible.
func (c *Context) SidePanel(name string, width int, add func(u *Ui)) {
	id := IDFrom("panel:" + name)
	width = max(8, min(width, c.width))
	u := newUi(c, id, width-3)
	add(u)
	lines, offset := scrollLines(u.lines, c.height, c.mem.scrollOffset(id), u.focusLine)
	c.mem.setScroll(id, offset)
	c.side = &panel{id: id, width: width, lines: lines}
}

// TopPanel draws a bar above the central area, right of any side panel.
func (c *Context) TopPanel(name string, add func(u *Ui)) {
	id := IDFrom("panel:" + name)
	u := newUi(c, id, c.AvailableWidth()-2)
	add(u)
	lines := u.lines
	if len(lines) >= c.height {
		lines = lines[:max(0, c.height-1)]
	}
	c.top = &panel{id: id, width: c.AvailableWidth(), lines: lines}
}

// CentralPanel sets how the area behind windows is painted.
func (c *Context) CentralPanel(fill Fill) {
	c.fill = fill
}

func (c *Context) addWindow(w windowOut) {
	c.windows = append(c.windows, w)
}

// EndFrame composes the frame into a string of exactly the frame's size.
func (c *Context) EndFrame() string {
	if !c.mem.Focus.IsZero() {
		if _, ok := c.seen[c.mem.Focus]; !ok {
			c.mem.Focus = ID{}
		}
	}
	c.last = Stats{
		Frame:   c.frame,
		Width:   c.width,
		Height:  c.height,
		Widgets: len(c.order),
		Windows: len(c.windows),
		Clashes: c.clashes,
		Focus:   c.mem.Focus,
		LastKey: c.lastKey,

		TextFocus: c.textFocus && !c.mem.Focus.IsZero(),
	}

	vis := c.style.Visuals()
	rightW := c.AvailableWidth()
	centralH := c.AvailableHeight()

	bg := lipgloss.NewStyle()
	if !c.fill.Transparent {
		bg = bg.Background(vis.Extreme)
	}
	canvas := fillCanvas(rightW, centralH, bg)
	slices.SortStableFunc(c.windows, func(a, b windowOut) int { return cmp.Compare(a.layer, b.layer) })
	for _, w := range c.windows {
		x := max(0, min(w.pos.X, rightW-w.w))
		y := max(0, min(w.pos.Y, centralH-w.h))
		canvas = overlayAt(canvas, w.text, x, y, rightW, centralH)
	}

	right := canvas
	if c.top != nil {
		bar := lipgloss.NewStyle().Background(vis.Panel).Foreground(vis.Text)
		rows := make([]string, 0, len(c.top.lines))
		for _, line := range c.top.lines {
			rows = append(rows, bar.Render(padRightANSI(" "+line, rightW)))
		}
		right = strings.Join(append(rows, canvas), "\n")
	}
	if c.side == nil {
		return right
	}

	sideStyle := lipgloss.NewStyle().Background(vis.Panel).Foreground(vis.Text)
	edge := lipgloss.NewStyle().Foreground(vis.Border).Background(vis.Panel).Render("│")
	rows := make([]string, c.height)
	for i := range rows {
		line := ""
		if i < len(c.side.lines) {
			line = c.side.lines[i]
		}
		rows[i] = sideStyle.Render(padRightANSI(" "+line, c.side.width-1)) + edge
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(rows, "\n"), right)
}
