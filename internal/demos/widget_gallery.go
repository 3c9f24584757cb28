package demos

import (
	"fmt"

	"github.com/jask/demohost/internal/demo"
	"github.com/jask/demohost/internal/ui"
)

// WidgetGallery shows every basic widget once.
type WidgetGallery struct {
	enabled bool
	boolean bool
	radio   string
	scalar  float64
	text    string
	clicks  int
}

func NewWidgetGallery() *WidgetGallery {
	return &WidgetGallery{enabled: true, radio: "first", scalar: 42, text: "Edit me"}
}

func (g *WidgetGallery) Name() string { return demo.DefaultOpen }

func (g *WidgetGallery) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(g.Name()).Open(open).Scroll(true).Show(ctx, g.ui)
}

func (g *WidgetGallery) ui(u *ui.Ui) {
	u.Checkbox(&g.enabled, "Interactive")
	u.Separator()

	u.Label("A label wraps when it is wider than the window it lives in, like this one does.")
	u.Hyperlink("Hyperlink to bubbletea", "https://github.com/charmbracelet/bubbletea")
	u.Separator()

	if !g.enabled {
		u.Weak("(widgets disabled)")
		return
	}
	if u.Button("Click me") {
		g.clicks++
	}
	u.Weak(fmt.Sprintf("clicked %d times", g.clicks))
	u.Checkbox(&g.boolean, "Checkbox")
	u.Horizontal(func(u *ui.Ui) {
		u.RadioValue(&g.radio, "first", "First")
		u.RadioValue(&g.radio, "second", "Second")
		u.RadioValue(&g.radio, "third", "Third")
	})
	u.Slider(&g.scalar, 0, 360, 5, "Slider")
	u.TextEdit(&g.text, "Text")
	u.CollapsingHeader("Collapsing header", func(u *ui.Ui) {
		u.Label("Hidden until expanded. Whether it is expanded is kept in UI memory, so Clear UI memory folds it again.")
	})
}
