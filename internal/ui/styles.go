package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/playmatatu/minidarts/internal/game"
)

var (
	ColorForeground = lipgloss.Color("#a9b1d6")
	ColorMuted      = lipgloss.Color("#565f89")
	ColorBorder     = lipgloss.Color("#292e42")
	ColorPrimary    = lipgloss.Color("#7aa2f7")
	ColorSuccess    = lipgloss.Color("#9ece6a")
	ColorWarning    = lipgloss.Color("#e0af68")
	ColorError      = lipgloss.Color("#f7768e")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	labelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	valueStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	turnStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// HitColor returns the color used to print a hit of the given kind.
func HitColor(kind game.HitKind) lipgloss.Color {
	switch kind {
	case game.HitBullseye, game.HitHalfBullseye:
		return ColorSuccess
	case game.HitTreble, game.HitDouble:
		return ColorWarning
	case game.HitMiss:
		return ColorError
	default:
		return ColorForeground
	}
}
