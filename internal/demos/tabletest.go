package demos

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jask/demohost/internal/ui"
)

// TableTest draws a lipgloss table of configurable size.
type TableTest struct {
	rows    float64
	striped bool
}

func NewTableTest() *TableTest { return &TableTest{rows: 5, striped: true} }

func (t *TableTest) Name() string { return "Table Test" }

func (t *TableTest) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(t.Name()).Open(open).Scroll(true).Show(ctx, func(u *ui.Ui) {
		u.Slider(&t.rows, 0, 50, 1, "Rows")
		u.Checkbox(&t.striped, "Striped")
		u.Add(squaresTable(int(t.rows), t.striped, u.Width(), ctx.Style().Visuals()))
	})
}

func squaresTable(n int, striped bool, width int, vis ui.Visuals) string {
	rows := make([][]string, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, []string{strconv.Itoa(i), strconv.Itoa(i * i), fmt.Sprintf("%.3f", 1/float64(i))})
	}
	header := lipgloss.NewStyle().Foreground(vis.Strong).Bold(true)
	cell := lipgloss.NewStyle().Foreground(vis.Text).Padding(0, 1)
	stripe := cell.Background(vis.Selected)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(vis.Border)).
		Headers("n", "n²", "1/n").
		Rows(rows...).
		Width(max(16, width)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header.Padding(0, 1)
			case striped && row%2 == 1:
				return stripe
			default:
				return cell
			}
		}).
		String()
}
