package ui

import "fmt"

// Window is a floating, titled window over the central area. Build one per
// frame with NewWindow and finish it with Show.
type Window struct {
	title     string
	open      *bool
	scroll    bool
	resizable bool
	width     int
}

func NewWindow(title string) *Window {
	return &Window{title: title, resizable: true}
}

// Open binds the window to a flag. A closed window is not drawn, and the
// title bar close control sets the flag to false.
func (w *Window) Open(open *bool) *Window {
	w.open = open
	return w
}

// Scroll lets content taller than the screen scroll with pgup/pgdown.
func (w *Window) Scroll(scroll bool) *Window {
	w.scroll = scroll
	return w
}

// Resizable false shrinks the window to its content width.
func (w *Window) Resizable(resizable bool) *Window {
	w.resizable = resizable
	return w
}

// Width overrides the style's window width.
func (w *Window) Width(width int) *Window {
	w.width = width
	return w
}

func (w *Window) ID() ID { return IDFrom("window:" + w.title) }

// Show draws the window if it is open.
func (w *Window) Show(ctx *Context, add func(u *Ui)) {
	if w.open != nil && !*w.open {
		return
	}
	id := w.ID()
	area := ctx.mem.area(id, w.title)
	start := len(ctx.order)

	closeFocused := false
	if w.open != nil {
		closeFocused = ctx.interact(id.Child("close"))
		if closeFocused && ctx.take(activateKeys...) {
			*w.open = false
		}
	}

	availW := ctx.AvailableWidth()
	availH := ctx.AvailableHeight()
	width := ctx.style.WindowWidth
	if w.width > 0 {
		width = w.width
	}
	width = max(12, min(width, availW))

	u := newUi(ctx, id, width-4)
	add(u)
	u.flushRow()

	if w.open != nil && !*w.open {
		return
	}

	focused := ctx.focusSince(start)
	if focused {
		ctx.mem.raise(id)
		w.handleMove(ctx, area)
	}
	if !w.resizable {
		width = max(12, min(width, maxLineWidth(u.lines)+4))
	}

	inner := len(u.lines)
	footer := ""
	lines := u.lines
	if maxInner := max(1, availH-2); inner > maxInner {
		inner = maxInner
		if w.scroll {
			offset := ctx.mem.scrollOffset(id)
			if focused {
				switch {
				case ctx.take("pgdown"):
					offset += inner
				case ctx.take("pgup"):
					offset -= inner
				}
			}
			lines, offset = scrollLines(u.lines, inner, offset, u.focusLine)
			ctx.mem.setScroll(id, offset)
			footer = fmt.Sprintf("%d-%d/%d", offset+1, offset+len(lines), len(u.lines))
		} else {
			lines = lines[:inner]
		}
	}
	inner = max(1, inner)

	f := frame{
		Title:        w.title,
		Lines:        lines,
		Width:        width,
		Height:       inner + 2,
		Focused:      focused,
		Closable:     w.open != nil,
		CloseFocused: closeFocused,
		Footer:       footer,
	}
	ctx.addWindow(windowOut{
		id:    id,
		layer: ctx.mem.layer(id),
		pos:   area.Pos,
		text:  f.render(ctx.style.Visuals()),
		w:     width,
		h:     inner + 2,
	})
}

func (w *Window) handleMove(ctx *Context, area *Area) {
	switch {
	case ctx.take("shift+up"):
		area.Pos.Y = max(0, area.Pos.Y-1)
	case ctx.take("shift+down"):
		area.Pos.Y = min(ctx.AvailableHeight()-1, area.Pos.Y+1)
	case ctx.take("shift+left"):
		area.Pos.X = max(0, area.Pos.X-2)
	case ctx.take("shift+right"):
		area.Pos.X = min(ctx.AvailableWidth()-1, area.Pos.X+2)
	}
}
