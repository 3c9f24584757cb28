package demos

import "github.com/jask/demohost/internal/ui"

// WindowOptions toggles window builder options and can close itself from
// inside its content.
type WindowOptions struct {
	closable  bool
	scroll    bool
	resizable bool
	width     float64
}

func NewWindowOptions() *WindowOptions {
	return &WindowOptions{closable: true, resizable: true, width: 44}
}

func (w *WindowOptions) Name() string { return "Window Options" }

func (w *WindowOptions) Render(ctx *ui.Context, open *bool) {
	win := ui.NewWindow(w.Name()).
		Scroll(w.scroll).
		Resizable(w.resizable).
		Width(int(w.width))
	if w.closable {
		win = win.Open(open)
	}
	win.Show(ctx, func(u *ui.Ui) {
		u.Checkbox(&w.closable, "Close control in title bar")
		u.Checkbox(&w.scroll, "Scroll")
		u.Checkbox(&w.resizable, "Resizable")
		u.Slider(&w.width, 24, 96, 2, "Width")
		u.Separator()
		if u.Button("Close this window") {
			*open = false
		}
	})
}
