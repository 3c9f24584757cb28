package demos

import (
	"fmt"
	"math"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/demohost/internal/ui"
)

const (
	plotHeight = 10
	plotPoints = 120
)

// Plot draws a sine wave with ntcharts. Animate shifts its phase each frame.
type Plot struct {
	freq    float64
	animate bool
	phase   float64
}

func NewPlot() *Plot { return &Plot{freq: 2} }

func (p *Plot) Name() string { return "Plot" }

func (p *Plot) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(p.Name()).Open(open).Scroll(true).Width(60).Show(ctx, func(u *ui.Ui) {
		u.Slider(&p.freq, 0.5, 8, 0.5, "Frequency")
		u.Checkbox(&p.animate, "Animate")
		if p.animate {
			p.phase += 0.2
			ctx.RequestRepaint()
		}
		u.Add(sinePlot(u.Width(), p.freq, p.phase, ctx.Style().Visuals()))
		u.Weak(fmt.Sprintf("y = sin(%gx + %.1f)", p.freq, p.phase))
	})
}

func sinePlot(width int, freq, phase float64, vis ui.Visuals) string {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(plotPoints * time.Second)

	chart := tslc.New(max(10, width), plotHeight)
	chart.SetStyle(lipgloss.NewStyle().Foreground(vis.Accent))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(vis.Border)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(vis.Muted)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(-1.2, 1.2)
	chart.SetViewYRange(-1.2, 1.2)
	for i := 0; i <= plotPoints; i++ {
		x := float64(i) / plotPoints * 2 * math.Pi
		chart.Push(tslc.TimePoint{Time: start.Add(time.Duration(i) * time.Second), Value: math.Sin(freq*x + phase)})
	}
	chart.DrawBraille()
	return chart.View()
}
