package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/playmatatu/minidarts/internal/game"
)

// RenderScoreboard renders both totals, whose turn it is and the match result.
func RenderScoreboard(m *game.Match) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mini Darts"))
	b.WriteString("\n")
	b.WriteString(scoreLine("Player", m.Scores.Player, m.Status == game.StatusInProgress && m.IsPlayerTurn()))
	b.WriteString("\n")
	b.WriteString(scoreLine("Opponent", m.Scores.Opponent, m.Status == game.StatusInProgress && !m.IsPlayerTurn()))
	b.WriteString("\n")

	switch m.Status {
	case game.StatusCompleted:
		b.WriteString(winStyle.Render(fmt.Sprintf("Winner: %s", m.Winner)))
	case game.StatusInProgress:
		b.WriteString(labelStyle.Render("Darts left: ") + valueStyle.Render(fmt.Sprintf("%d", m.DartsLeft)))
	default:
		b.WriteString(labelStyle.Render(string(m.Status)))
	}
	return boxStyle.Render(b.String())
}

func scoreLine(name string, total int, active bool) string {
	label := labelStyle.Render(fmt.Sprintf("%-9s", name+":"))
	value := valueStyle.Render(fmt.Sprintf("%5d", total))
	if active {
		return label + value + " " + turnStyle.Render("<")
	}
	return label + value
}

// RenderDebug renders the aim diagnostics of the last throw.
func RenderDebug(res game.ShotResult, dartsLeft int) string {
	hit := lipgloss.NewStyle().Bold(true).Foreground(HitColor(res.Outcome.Kind)).Render(res.Outcome.String())
	fields := []string{
		hit,
		fmt.Sprintf("%s %d", labelStyle.Render("pts:"), res.Outcome.Points()),
		fmt.Sprintf("%s %v", labelStyle.Render("distance:"), game.RoundToTwo(res.Distance)),
		fmt.Sprintf("%s %v", labelStyle.Render("n_dist:"), game.RoundToTwo(res.NormalizedDistance)),
		fmt.Sprintf("%s %v", labelStyle.Render("degrees:"), game.RoundToTwo(res.Degrees)),
		fmt.Sprintf("%s %d", labelStyle.Render("darts:"), dartsLeft),
	}
	return strings.Join(fields, "  ")
}
