package demos

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jask/demohost/internal/ui"
)

const markdownSource = `# demohost

Each entry in the side panel is a **demo**: a window that knows its
*name* and how to draw itself.

- Tick a demo to open it, untick it or press ` + "`[x]`" + ` to close it.
- The set of open demos is saved and restored by name.
- ` + "`tab`" + ` moves focus, ` + "`enter`" + ` activates.

> Renamed demos start closed: their old name no longer matches.
`

// Markdown renders a document with glamour. The rendered text is cached per
// width and theme.
type Markdown struct {
	width    int
	dark     bool
	rendered string
}

func NewMarkdown() *Markdown { return &Markdown{} }

func (m *Markdown) Name() string { return "Markdown" }

func (m *Markdown) Render(ctx *ui.Context, open *bool) {
	ui.NewWindow(m.Name()).Open(open).Scroll(true).Show(ctx, func(u *ui.Ui) {
		dark := ctx.Style().Dark
		if m.rendered == "" || m.width != u.Width() || m.dark != dark {
			m.width, m.dark = u.Width(), dark
			m.rendered = renderMarkdown(markdownSource, u.Width(), dark)
		}
		u.Add(m.rendered)
	})
}

func renderMarkdown(src string, width int, dark bool) string {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(10, width-2)),
	)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.Trim(out, "\n")
}
