package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// textKeys are the keys a focused TextEdit takes before any other widget.
var textKeys = map[tea.KeyType]bool{
	tea.KeyRunes:     true,
	tea.KeySpace:     true,
	tea.KeyBackspace: true,
	tea.KeyDelete:    true,
	tea.KeyLeft:      true,
	tea.KeyRight:     true,
	tea.KeyHome:      true,
	tea.KeyEnd:       true,
	tea.KeyCtrlU:     true,
	tea.KeyCtrlK:     true,
	tea.KeyCtrlW:     true,
}

// IsTextKey reports whether msg edits text when a TextEdit has focus.
func IsTextKey(msg tea.KeyMsg) bool { return textKeys[msg.Type] }

// TextEdit is a single-line field. Editing state (cursor, scroll) lives in
// Memory; the text itself is *value. It reports whether *value changed.
func (u *Ui) TextEdit(value *string, label string) bool {
	id := u.id.Child("textedit:" + label)
	focused := u.ctx.interact(id)
	ti := u.ctx.mem.textInput(id)
	if ti.Value() != *value {
		ti.SetValue(*value)
	}
	ti.Prompt = label + ": "
	ti.Width = max(4, u.width-lipgloss.Width(ti.Prompt)-1)

	changed := false
	if focused {
		u.ctx.textFocus = true
		if !ti.Focused() {
			ti.Focus()
		}
		if msg, ok := u.ctx.input.Msg.(tea.KeyMsg); ok && IsTextKey(msg) && !u.ctx.consumed {
			u.ctx.consumed = true
			*ti, _ = ti.Update(msg)
			if v := ti.Value(); v != *value {
				*value = v
				changed = true
			}
		}
		u.markFocus()
	} else if ti.Focused() {
		ti.Blur()
	}
	text := ti.View()
	if focused && u.ctx.style.DebugIDs {
		text += lipgloss.NewStyle().Foreground(u.visuals().Muted).Render(" #" + id.Short())
	}
	u.push(text)
	return changed
}
