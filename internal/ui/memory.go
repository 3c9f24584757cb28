package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
)

// Pos is a cell offset inside the central area.
type Pos struct {
	X int
	Y int
}

// Area is the remembered placement of a window.
type Area struct {
	Title string
	Pos   Pos
}

// Memory is the UI state that outlives a frame: focus, window placement,
// scroll offsets and collapsing headers. None of it is persisted.
type Memory struct {
	Focus ID

	areas     map[ID]*Area
	order     []ID // back to front
	scroll    map[ID]int
	collapsed map[ID]bool // true when expanded
	text      map[ID]*textinput.Model
}

func NewMemory() *Memory {
	return &Memory{
		areas:     map[ID]*Area{},
		scroll:    map[ID]int{},
		collapsed: map[ID]bool{},
		text:      map[ID]*textinput.Model{},
	}
}

// ResetAreas forgets window placement and stacking. Windows cascade again
// on the next frame in the order they are shown.
func (m *Memory) ResetAreas() {
	m.areas = map[ID]*Area{}
	m.order = nil
}

// Reset forgets everything, focus included.
func (m *Memory) Reset() {
	*m = *NewMemory()
}

func (m *Memory) Area(id ID) (Area, bool) {
	a, ok := m.areas[id]
	if !ok {
		return Area{}, false
	}
	return *a, true
}

// Areas returns window areas from back to front.
func (m *Memory) Areas() []Area {
	out := make([]Area, 0, len(m.order))
	for _, id := range m.order {
		if a, ok := m.areas[id]; ok {
			out = append(out, *a)
		}
	}
	return out
}

func (m *Memory) AreaCount() int      { return len(m.areas) }
func (m *Memory) ScrollCount() int    { return len(m.scroll) }
func (m *Memory) CollapsedCount() int { return len(m.collapsed) }
func (m *Memory) TextCount() int      { return len(m.text) }

func (m *Memory) area(id ID, title string) *Area {
	if a, ok := m.areas[id]; ok {
		return a
	}
	k := len(m.areas) % 8
	a := &Area{Title: title, Pos: Pos{X: 2 + 4*k, Y: 1 + 2*k}}
	m.areas[id] = a
	m.order = append(m.order, id)
	return a
}

func (m *Memory) raise(id ID) {
	idx := slices.Index(m.order, id)
	if idx < 0 || idx == len(m.order)-1 {
		return
	}
	m.order = append(slices.Delete(m.order, idx, idx+1), id)
}

func (m *Memory) layer(id ID) int {
	return slices.Index(m.order, id)
}

func (m *Memory) scrollOffset(id ID) int { return m.scroll[id] }

func (m *Memory) setScroll(id ID, offset int) {
	if offset <= 0 {
		delete(m.scroll, id)
		return
	}
	m.scroll[id] = offset
}

func (m *Memory) expanded(id ID) bool { return m.collapsed[id] }

func (m *Memory) setExpanded(id ID, open bool) { m.collapsed[id] = open }

func (m *Memory) textInput(id ID) *textinput.Model {
	if ti, ok := m.text[id]; ok {
		return ti
	}
	ti := textinput.New()
	m.text[id] = &ti
	return &ti
}
