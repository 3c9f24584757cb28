package demos

import (
	"fmt"

	"github.com/jask/demohost/internal/ui"
)

// Scrolling shows a window much taller than the screen.
type Scrolling struct {
	rows float64
}

func NewScrolling() *Scrolling { return &Scrolling{rows: 100} }

func (s *Scrolling) Name() string { return "Scrolling" }

func (s *Scrolling) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(s.Name()).Open(open).Scroll(true).Show(ctx, func(u *ui.Ui) {
		u.Weak("pgup/pgdown scroll while focus is in this window.")
		u.Slider(&s.rows, 10, 1000, 10, "Rows")
		for i := 0; i < int(s.rows); i++ {
			u.Label(fmt.Sprintf("This is row %d/%d", i+1, int(s.rows)))
		}
	})
}
