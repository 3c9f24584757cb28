package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func frameOf(c *Context, key string, draw func(c *Context)) string {
	c.BeginFrame(Input{Key: key}, 80, 24)
	draw(c)
	return c.EndFrame()
}

func TestTabCyclesFocusInDeclarationOrder(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	var a, b bool
	draw := func(c *Context) {
		c.SidePanel("side", 30, func(u *Ui) {
			u.Checkbox(&a, "a")
			u.Checkbox(&b, "b")
		})
	}
	side := IDFrom("panel:side")
	idA, idB := side.Child("checkbox:a"), side.Child("checkbox:b")

	frameOf(c, "", draw)
	require.True(t, c.Memory().Focus.IsZero())

	frameOf(c, "tab", draw)
	require.Equal(t, idA, c.Memory().Focus)
	frameOf(c, "tab", draw)
	require.Equal(t, idB, c.Memory().Focus)
	frameOf(c, "tab", draw)
	require.Equal(t, idA, c.Memory().Focus, "focus wraps around")
	frameOf(c, "shift+tab", draw)
	require.Equal(t, idB, c.Memory().Focus)
	frameOf(c, "esc", draw)
	require.True(t, c.Memory().Focus.IsZero())

	require.False(t, a)
	require.False(t, b, "navigation keys never activate widgets")
}

func TestCheckboxTogglesOnActivate(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	var v bool
	var changed bool
	draw := func(c *Context) {
		c.SidePanel("side", 30, func(u *Ui) {
			changed = u.Checkbox(&v, "value")
		})
	}
	frameOf(c, "", draw)
	frameOf(c, "tab", draw)
	require.False(t, changed)

	out := frameOf(c, "enter", draw)
	require.True(t, changed)
	require.True(t, v)
	require.Contains(t, ansi.Strip(out), "[x] value")

	frameOf(c, " ", draw)
	require.False(t, v)
}

func TestFocusClearedWhenWidgetDisappears(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	show := true
	var v bool
	draw := func(c *Context) {
		c.SidePanel("side", 30, func(u *Ui) {
			if show {
				u.Checkbox(&v, "gone")
			}
			u.Label("static")
		})
	}
	frameOf(c, "", draw)
	frameOf(c, "tab", draw)
	require.False(t, c.Memory().Focus.IsZero())

	show = false
	frameOf(c, "", draw)
	require.True(t, c.Memory().Focus.IsZero())
}

func TestDuplicateWidgetIDsCountAsClashes(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	var a, b bool
	frameOf(c, "", func(c *Context) {
		c.SidePanel("side", 30, func(u *Ui) {
			u.Checkbox(&a, "same")
			u.Checkbox(&b, "same")
		})
	})
	s := c.Stats()
	require.Equal(t, 1, s.Clashes)
	require.Equal(t, 1, s.Widgets)
}

func TestEndFrameFillsScreen(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	open := true
	out := frameOf(c, "", func(c *Context) {
		c.SidePanel("side", 20, func(u *Ui) { u.Heading("side") })
		c.TopPanel("top", func(u *Ui) { u.Label("menu") })
		c.CentralPanel(Fill{})
		NewWindow("win").Open(&open).Show(c, func(u *Ui) { u.Label("hello") })
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)
	for i, line := range lines {
		require.Equal(t, 80, ansi.StringWidth(line), "line %d", i)
	}
	require.Contains(t, ansi.Strip(out), "hello")
	require.Equal(t, 1, c.Stats().Windows)
}

func TestRequestRepaintResetsEachFrame(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	frameOf(c, "", func(c *Context) { c.RequestRepaint() })
	require.True(t, c.RepaintRequested())
	frameOf(c, "", func(*Context) {})
	require.False(t, c.RepaintRequested())
}

func TestLastKeySurvivesRepaints(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	frameOf(c, "x", func(*Context) {})
	frameOf(c, "", func(*Context) {})
	require.Equal(t, "x", c.LastKey())
	require.Equal(t, uint64(2), c.Frame())
}

func TestTextEditTakesPlainKeys(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	text := "ab"
	var changed bool
	draw := func(c *Context) {
		c.SidePanel("side", 40, func(u *Ui) {
			changed = u.TextEdit(&text, "Name")
		})
	}
	key := func(msg tea.KeyMsg) string {
		c.BeginFrame(Input{Key: msg.String(), Msg: msg}, 80, 24)
		draw(c)
		return c.EndFrame()
	}

	frameOf(c, "", draw)
	require.False(t, c.WantsKeyboardInput())
	frameOf(c, "tab", draw)
	require.True(t, c.WantsKeyboardInput())

	key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.True(t, changed)
	require.Equal(t, "abc", text)

	key(tea.KeyMsg{Type: tea.KeyBackspace})
	key(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "a", text)

	text = "replaced"
	out := frameOf(c, "", draw)
	require.Contains(t, ansi.Strip(out), "Name: replaced")
	require.Equal(t, 1, c.Memory().TextCount())

	frameOf(c, "esc", draw)
	require.False(t, c.WantsKeyboardInput())
}

func TestNavigationKeysAreConsumed(t *testing.T) {
	t.Parallel()

	c := NewContext(DefaultStyle())
	c.BeginFrame(Input{Key: "tab"}, 80, 24)
	require.True(t, c.Consumed())
	c.EndFrame()

	c.BeginFrame(Input{Key: "x"}, 80, 24)
	require.False(t, c.Consumed())
	c.EndFrame()
}
