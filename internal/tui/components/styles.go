// Package components holds the styles and small widgets shared by the
// pokedex TUI views.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pokedex/internal/pokedex"
)

// Palette.
const (
	colorAccent  = lipgloss.Color("#EF5350")
	colorLabel   = lipgloss.Color("245")
	colorValue   = lipgloss.Color("252")
	colorSubtle  = lipgloss.Color("240")
	colorInfo    = lipgloss.Color("39")
	colorWarning = lipgloss.Color("214")
	colorBadgeFg = lipgloss.Color("#FFFFFF")
	colorSelectB = lipgloss.Color("57")
	colorSelectF = lipgloss.Color("229")
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	LabelStyle = lipgloss.NewStyle().Foreground(colorLabel)

	ValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorValue)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	InfoStyle = lipgloss.NewStyle().Foreground(colorInfo)

	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorSelectF).
			Background(colorSelectB).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().Foreground(colorBadgeFg).Padding(0, 1)
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// TypeBadge renders a type name on its type colour.
func TypeBadge(typeName string) string {
	return badgeStyle.Background(lipgloss.Color(pokedex.TypeColor(typeName))).Render(typeName)
}

// TypeBadges renders badges for each type separated by a space.
func TypeBadges(types []string) string {
	badges := make([]string, len(types))
	for i, t := range types {
		badges[i] = TypeBadge(t)
	}
	return strings.Join(badges, " ")
}

// StatBar renders value as a bar of width cells relative to
// pokedex.MaxBaseStat.
func StatBar(value, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pokedex.StatFraction(value)*float64(width) + 0.5)
	return InfoStyle.Render(strings.Repeat(barFull, filled)) +
		SubtleStyle.Render(strings.Repeat(barEmpty, width-filled))
}
