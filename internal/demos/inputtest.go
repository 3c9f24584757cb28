package demos

import (
	"fmt"
	"strings"

	"github.com/jask/demohost/internal/ui"
)

const inputHistory = 8

// InputTest shows the keys the frames received.
type InputTest struct {
	history []string
}

func NewInputTest() *InputTest { return &InputTest{} }

func (t *InputTest) Name() string { return "Input Test" }

func (t *InputTest) Render(ctx *ui.Context, open *bool) {
	usedBefore := ctx.Consumed()
	if key := ctx.Input().Key; key != "" {
		t.history = append(t.history, key)
		if len(t.history) > inputHistory {
			t.history = t.history[len(t.history)-inputHistory:]
		}
	}
	ui.NewWindow(t.Name()).Open(open).Show(ctx, func(u *ui.Ui) {
		u.Label(fmt.Sprintf("This frame: %q", ctx.Input().Key))
		u.Label(fmt.Sprintf("Frame: %d", ctx.Frame()))
		u.Label(fmt.Sprintf("Used before this window: %t", usedBefore))
		u.Separator()
		u.Weak("Recent keys:")
		if len(t.history) == 0 {
			u.Weak("(none)")
			return
		}
		u.Monospace(strings.Join(t.history, "  "))
		if u.Button("Clear") {
			t.history = nil
		}
	})
}
