package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Picker        lipgloss.Style
	PickerFocused lipgloss.Style
	Clock         lipgloss.Style
	Running       lipgloss.Style
	Paused        lipgloss.Style
	Idle          lipgloss.Style
	Dim           lipgloss.Style
	Error         lipgloss.Style
	Progress      string
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Picker:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		PickerFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Running:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Paused:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Idle:          lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Progress:      "#FF5FD2",
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Picker:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		PickerFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Running:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Paused:        lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Idle:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Progress:      "#BD93F9",
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func themeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nextTheme returns the theme key following current in sorted order.
func nextTheme(current string) string {
	names := themeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
