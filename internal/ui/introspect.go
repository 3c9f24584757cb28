package ui

import "fmt"

// SettingsUI lets the user edit the Style.
func (c *Context) SettingsUI(u *Ui) {
	u.Heading("Visuals")
	u.Checkbox(&c.style.Dark, "Dark mode")
	width := float64(c.style.WindowWidth)
	if u.Slider(&width, 24, 96, 2, "Window width") {
		c.style.WindowWidth = int(width)
	}
	u.Separator()
	u.Heading("Debug")
	u.Checkbox(&c.style.DebugIDs, "Show id of focused widget")
	if u.Button("Reset style") {
		c.style = DefaultStyle()
	}
}

// InspectionUI shows what the previous frame contained.
func (c *Context) InspectionUI(u *Ui) {
	s := c.Stats()
	u.Label(fmt.Sprintf("Frame: %d", s.Frame))
	u.Label(fmt.Sprintf("Screen: %dx%d", s.Width, s.Height))
	u.Label(fmt.Sprintf("Widgets: %d", s.Widgets))
	u.Label(fmt.Sprintf("Windows: %d", s.Windows))
	u.Label("Focus: " + s.Focus.Short())
	key := s.LastKey
	if key == "" {
		key = "-"
	}
	u.Label(fmt.Sprintf("Last key: %q", key))
	if s.Clashes > 0 {
		u.Colored(u.visuals().Warning, fmt.Sprintf("Id clashes: %d", s.Clashes))
	} else {
		u.Weak("Id clashes: 0")
	}
}

// MemoryUI shows and resets Memory.
func (c *Context) MemoryUI(u *Ui) {
	m := c.mem
	u.Label(fmt.Sprintf("Window areas: %d", m.AreaCount()))
	for _, a := range m.Areas() {
		u.Weak(fmt.Sprintf("  %s @ %d,%d", a.Title, a.Pos.X, a.Pos.Y))
	}
	u.Label(fmt.Sprintf("Scroll offsets: %d", m.ScrollCount()))
	u.Label(fmt.Sprintf("Collapsing headers: %d", m.CollapsedCount()))
	u.Label(fmt.Sprintf("Text fields: %d", m.TextCount()))
	u.Horizontal(func(u *Ui) {
		if u.Button("Reset areas") {
			m.ResetAreas()
		}
		if u.Button("Reset all") {
			m.Reset()
		}
	})
}
