package demo

import "slices"

// VisibilitySet is the set of open demo names. Names that match no
// registered demo are kept but never match anything.
type VisibilitySet struct {
	names map[string]struct{}
}

func NewVisibilitySet(names ...string) *VisibilitySet {
	s := &VisibilitySet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	return s
}

func (s *VisibilitySet) IsOpen(name string) bool {
	_, ok := s.names[name]
	return ok
}

// SetOpen adds or removes name. Repeating the current state is a no-op.
func (s *VisibilitySet) SetOpen(name string, open bool) {
	if open {
		if _, ok := s.names[name]; !ok {
			s.names[name] = struct{}{}
		}
		return
	}
	delete(s.names, name)
}

func (s *VisibilitySet) Len() int { return len(s.names) }

// Names returns the members in sorted order.
func (s *VisibilitySet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
