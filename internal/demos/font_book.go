package demos

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/demohost/internal/ui"
)

type glyphRange struct {
	name     string
	from, to rune
}

var glyphRanges = []glyphRange{
	{"Arrows", 0x2190, 0x21ff},
	{"Box drawing", 0x2500, 0x257f},
	{"Block elements", 0x2580, 0x259f},
	{"Geometric shapes", 0x25a0, 0x25ff},
	{"Braille", 0x2800, 0x28ff},
}

// FontBook lists the glyphs of a few unicode blocks as the terminal draws them.
type FontBook struct {
	block  string
	filter string
}

func NewFontBook() *FontBook { return &FontBook{block: glyphRanges[0].name} }

func (f *FontBook) Name() string { return "Font Book" }

func (f *FontBook) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(f.Name()).Open(open).Scroll(true).Show(ctx, func(u *ui.Ui) {
		u.Label("Glyph width is whatever your terminal font says it is.")
		u.TextEdit(&f.filter, "Filter")
		for _, r := range glyphRanges {
			if matchesFilter(r.name, f.filter) {
				u.RadioValue(&f.block, r.name, r.name)
			}
		}
		u.Separator()
		for _, r := range glyphRanges {
			if r.name != f.block {
				continue
			}
			u.Weak(fmt.Sprintf("U+%04X..U+%04X", r.from, r.to))
			u.Monospace(glyphGrid(r, u.Width()))
		}
	})
}

func glyphGrid(r glyphRange, width int) string {
	var b strings.Builder
	lineW := 0
	for c := r.from; c <= r.to; c++ {
		cell := string(c) + " "
		w := ansi.StringWidth(cell)
		if lineW+w > width {
			b.WriteByte('\n')
			lineW = 0
		}
		b.WriteString(cell)
		lineW += w
	}
	return b.String()
}

func matchesFilter(name, filter string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(strings.TrimSpace(filter)))
}
