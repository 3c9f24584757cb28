package demos

import "github.com/jask/demohost/internal/ui"

// IDTest deliberately gives two widgets the same id.
type IDTest struct {
	first, second bool
}

func NewIDTest() *IDTest { return &IDTest{} }

func (t *IDTest) Name() string { return "Id Test" }

func (t *IDTest) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(t.Name()).Open(open).Show(ctx, func(u *ui.Ui) {
		u.Label("Widget ids are derived from the window and the label. These two checkboxes share a label and therefore an id, so only the first can take focus.")
		u.Checkbox(&t.first, "Same label")
		u.Checkbox(&t.second, "Same label")
		u.Weak("Open Inspection to see the clash count.")
	})
}
