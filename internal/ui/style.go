package ui

import "github.com/charmbracelet/lipgloss"

// Visuals is the semantic palette widgets draw with.
type Visuals struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Strong   lipgloss.Color
	Accent   lipgloss.Color
	Link     lipgloss.Color
	Border   lipgloss.Color
	Focus    lipgloss.Color
	Active   lipgloss.Color
	Panel    lipgloss.Color
	Extreme  lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
	Selected lipgloss.Color
}

// Catppuccin Mocha.
func DarkVisuals() Visuals {
	return Visuals{
		Text:     "#cdd6f4",
		Muted:    "#7f849c",
		Strong:   "#f5e0dc",
		Accent:   "#f5c2e7",
		Link:     "#89b4fa",
		Border:   "#585b70",
		Focus:    "#b4befe",
		Active:   "#a6e3a1",
		Panel:    "#181825",
		Extreme:  "#11111b",
		Success:  "#a6e3a1",
		Warning:  "#f9e2af",
		Error:    "#f38ba8",
		Selected: "#313244",
	}
}

// Catppuccin Latte.
func LightVisuals() Visuals {
	return Visuals{
		Text:     "#4c4f69",
		Muted:    "#8c8fa1",
		Strong:   "#dc8a78",
		Accent:   "#ea76cb",
		Link:     "#1e66f5",
		Border:   "#acb0be",
		Focus:    "#7287fd",
		Active:   "#40a02b",
		Panel:    "#e6e9ef",
		Extreme:  "#dce0e8",
		Success:  "#40a02b",
		Warning:  "#df8e1d",
		Error:    "#d20f39",
		Selected: "#ccd0da",
	}
}

// Style holds the user-adjustable look of the UI.
type Style struct {
	Dark        bool
	WindowWidth int
	DebugIDs    bool
}

func DefaultStyle() Style {
	return Style{Dark: true, WindowWidth: 44}
}

func (s Style) Visuals() Visuals {
	if s.Dark {
		return DarkVisuals()
	}
	return LightVisuals()
}
