// Package host composes the demo registry with the side panel, menu bar
// and the built-in Settings, Inspection and Memory windows.
package host

import (
	"github.com/jask/demohost/internal/demo"
	"github.com/jask/demohost/internal/ui"
)

const (
	SettingsTitle   = "⚙ Settings"
	InspectionTitle = "◎ Inspection"
	MemoryTitle     = "▤ Memory"
)

// OpenWindows tracks the built-in windows.
type OpenWindows struct {
	Settings   bool `toml:"settings"`
	Inspection bool `toml:"inspection"`
	Memory     bool `toml:"memory"`
}

func (w *OpenWindows) Checkboxes(u *ui.Ui) {
	u.Checkbox(&w.Settings, SettingsTitle)
	u.Checkbox(&w.Inspection, InspectionTitle)
	u.Checkbox(&w.Memory, MemoryTitle)
}

// State is the persisted record of a DemoWindows.
type State struct {
	Demos   demo.State  `toml:"demos"`
	Windows OpenWindows `toml:"windows"`
}

func DefaultState() State {
	return State{Demos: demo.DefaultState()}
}

// Options tune the chrome around the demos.
type Options struct {
	SidePanelWidth        int
	TransparentBackground bool
}

// DemoWindows is the top-level UI: a side panel listing demos, a menu bar,
// the built-in windows and the demo windows themselves.
type DemoWindows struct {
	opts  Options
	open  OpenWindows
	demos *demo.Registry
}

func New(demos *demo.Registry, opts Options) *DemoWindows {
	if opts.SidePanelWidth <= 0 {
		opts.SidePanelWidth = 32
	}
	return &DemoWindows{opts: opts, demos: demos}
}

func (d *DemoWindows) Demos() *demo.Registry { return d.demos }

func (d *DemoWindows) OpenWindows() *OpenWindows { return &d.open }

func (d *DemoWindows) State() State {
	return State{Demos: d.demos.State(), Windows: d.open}
}

func (d *DemoWindows) Restore(s State) {
	d.demos.Restore(s.Demos)
	d.open = s.Windows
}

// OrganizeWindows forgets window placement so open windows cascade again.
func (d *DemoWindows) OrganizeWindows(ctx *ui.Context) {
	ctx.Memory().ResetAreas()
}

// ClearMemory forgets scroll offsets, collapsing headers, focus and placement.
func (d *DemoWindows) ClearMemory(ctx *ui.Context) {
	ctx.Memory().Reset()
}

// Render draws one frame of the host.
func (d *DemoWindows) Render(ctx *ui.Context) {
	ctx.SidePanel("side_panel", d.opts.SidePanelWidth, d.sidePanel)
	ctx.TopPanel("menu_bar", d.menuBar)
	ctx.CentralPanel(ui.Fill{Transparent: d.opts.TransparentBackground})
	d.windows(ctx)
}

func (d *DemoWindows) sidePanel(u *ui.Ui) {
	u.Heading("✒ demohost")
	u.Separator()
	u.Label("demohost is a terminal window host for self-contained UI demos.")
	u.Hyperlink("⌂ demohost home page", "https://github.com/jask/demohost")
	u.Label("Runs in any terminal on Linux, macOS and Windows.")
	u.Separator()

	u.Heading("Windows:")
	d.demos.Checkboxes(u)
	u.Separator()

	u.Label("ui:")
	d.open.Checkboxes(u)
	u.Separator()

	if u.Button("Organize windows") {
		d.OrganizeWindows(u.Context())
	}
}

func (d *DemoWindows) menuBar(u *ui.Ui) {
	u.Horizontal(func(u *ui.Ui) {
		u.Heading("File")
		u.Separator()
		if u.Button("Organize windows") {
			d.OrganizeWindows(u.Context())
		}
		if u.Button("Clear UI memory") {
			d.ClearMemory(u.Context())
		}
	})
}

func (d *DemoWindows) windows(ctx *ui.Context) {
	ui.NewWindow(SettingsTitle).
		Open(&d.open.Settings).
		Scroll(true).
		Show(ctx, ctx.SettingsUI)

	ui.NewWindow(InspectionTitle).
		Open(&d.open.Inspection).
		Scroll(true).
		Show(ctx, ctx.InspectionUI)

	ui.NewWindow(MemoryTitle).
		Open(&d.open.Memory).
		Resizable(false).
		Show(ctx, ctx.MemoryUI)

	d.demos.Show(ctx)
}
