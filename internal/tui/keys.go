package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to an action. Bindings without an action only
// document keys the UI handles itself.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) Bindings() []KeyBinding {
	return slices.Clone(r.bindings)
}

// Action returns the action bound to msg, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action == "" {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// DefaultBindings are the global shortcuts plus the UI navigation keys.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"tab", "shift+tab"}, Description: "focus"},
		{Keys: []string{"enter", "space"}, Description: "toggle"},
		{Keys: []string{"pgdown", "pgup"}, Description: "scroll"},
		{Keys: []string{"shift+↑↓←→"}, Description: "move window"},
		{Keys: []string{"ctrl+o"}, Action: CmdOrganizeWindows, Description: "organize"},
		{Keys: []string{"ctrl+l"}, Action: CmdClearMemory, Description: "clear memory"},
		{Keys: []string{"ctrl+s"}, Action: CmdSaveState, Description: "save"},
		{Keys: []string{"ctrl+r"}, Action: CmdResetState, Description: "reset"},
		{Keys: []string{"q", "ctrl+c"}, Action: CmdQuit, Description: "quit"},
	}
}
