package demo

import (
	"slices"

	"github.com/jask/demohost/internal/ui"
)

// DefaultOpen is the demo open on a fresh start.
const DefaultOpen = "Widget Gallery"

// State is the persisted part of a Registry.
type State struct {
	Open []string `toml:"open"`
}

// DefaultState has only DefaultOpen open.
func DefaultState() State {
	return State{Open: []string{DefaultOpen}}
}

// Registry owns the demos, fixed at construction, and the set of open ones.
type Registry struct {
	demos []Demo
	open  *VisibilitySet
}

// NewRegistry keeps demos in the given order. Names are assumed unique; see
// ValidateNames.
func NewRegistry(demos ...Demo) *Registry {
	return &Registry{
		demos: slices.Clone(demos),
		open:  NewVisibilitySet(DefaultState().Open...),
	}
}

func (r *Registry) Len() int { return len(r.demos) }

// Names returns demo names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.demos))
	for _, d := range r.demos {
		out = append(out, d.Name())
	}
	return out
}

func (r *Registry) Lookup(name string) (Demo, bool) {
	for _, d := range r.demos {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

func (r *Registry) IsOpen(name string) bool { return r.open.IsOpen(name) }

func (r *Registry) SetOpen(name string, open bool) { r.open.SetOpen(name, open) }

// Open returns the open set, stale names included, sorted.
func (r *Registry) Open() []string { return r.open.Names() }

// Checkboxes draws one checkbox per demo in registration order.
func (r *Registry) Checkboxes(u *ui.Ui) {
	for _, d := range r.demos {
		name := d.Name()
		isOpen := r.open.IsOpen(name)
		u.Checkbox(&isOpen, name)
		r.open.SetOpen(name, isOpen)
	}
}

// Show renders every open demo in registration order. Closed demos are
// skipped; a demo that closes itself is removed from the open set.
func (r *Registry) Show(ctx *ui.Context) {
	for _, d := range r.demos {
		name := d.Name()
		if !r.open.IsOpen(name) {
			continue
		}
		isOpen := true
		d.Render(ctx, &isOpen)
		r.open.SetOpen(name, isOpen)
	}
}

func (r *Registry) State() State {
	return State{Open: r.open.Names()}
}

// Restore replaces the open set. A nil Open keeps the default.
func (r *Registry) Restore(s State) {
	if s.Open == nil {
		r.open = NewVisibilitySet(DefaultState().Open...)
		return
	}
	r.open = NewVisibilitySet(s.Open...)
}
