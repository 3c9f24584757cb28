package demos

import (
	"fmt"
	"math"

	"github.com/jask/demohost/internal/ui"
)

// Sliders shows sliders with different ranges and steps.
type Sliders struct {
	min, max float64
	value    float64
	integer  bool
}

func NewSliders() *Sliders { return &Sliders{min: 0, max: 10, value: 5} }

func (s *Sliders) Name() string { return "Sliders" }

func (s *Sliders) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(s.Name()).Open(open).Show(ctx, func(u *ui.Ui) {
		u.Label("left/right change the focused slider, home/end jump to its ends.")
		u.Checkbox(&s.integer, "Integers only")
		step := 0.25
		if s.integer {
			step = 1
			s.value = math.Round(s.value)
		}
		u.Slider(&s.value, s.min, s.max, step, "Value")
		u.Separator()
		u.Slider(&s.min, -100, s.max, 1, "Min")
		u.Slider(&s.max, s.min, 100, 1, "Max")
		u.Weak(fmt.Sprintf("%g in [%g, %g]", s.value, s.min, s.max))
		if u.Button("Reset") {
			*s = *NewSliders()
		}
	})
}
