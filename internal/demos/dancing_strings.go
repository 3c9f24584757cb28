package demos

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/demohost/internal/ui"
)

const dancingHeight = 9

// DancingStrings animates three sine waves and keeps requesting repaints
// while open.
type DancingStrings struct {
	start time.Time
	now   func() time.Time
}

func NewDancingStrings() *DancingStrings {
	return &DancingStrings{start: time.Now(), now: time.Now}
}

func (d *DancingStrings) Name() string { return "Dancing Strings" }

func (d *DancingStrings) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(d.Name()).Open(open).Resizable(false).Show(ctx, func(u *ui.Ui) {
		ctx.RequestRepaint()
		t := d.now().Sub(d.start).Seconds()
		u.Add(dancingStrings(u.Width(), t, ctx.Style().Visuals()))
	})
}

func dancingStrings(width int, t float64, vis ui.Visuals) string {
	width = max(1, width)
	grid := make([][]string, dancingHeight)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	colors := []lipgloss.Color{vis.Accent, vis.Link, vis.Success}
	mid := float64(dancingHeight-1) / 2
	for i, color := range colors {
		dot := lipgloss.NewStyle().Foreground(color).Render("•")
		phase := float64(i) * 2 * math.Pi / float64(len(colors))
		freq := 0.15 + 0.05*float64(i)
		for x := 0; x < width; x++ {
			amp := mid * math.Sin(t*0.7+float64(i))
			y := int(math.Round(mid + amp*math.Sin(float64(x)*freq+t*2+phase)))
			if y >= 0 && y < dancingHeight {
				grid[y][x] = dot
			}
		}
	}
	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}
