package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/marksaft/gramiz/internal/quiz"
	"github.com/marksaft/gramiz/internal/ui/components"
	"github.com/marksaft/gramiz/internal/ui/theme"
)

// renderQuestion renders the active question: status line, countdown,
// sentence, and the answer choices.
func (p *PlayScreen) renderQuestion(width int) string {
	s := p.deps.Session
	q := p.turn.Question()

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.Index()+1, s.Len()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %d   Streak %d", s.Score(), s.Streak()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	if tally := components.Tally(s.History()); tally != "" {
		b.WriteString("  " + tally + "\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString("  " + components.Countdown(p.turn.TimeRemaining(), quiz.TurnSeconds, width-4))
	b.WriteString("\n\n")

	if q.IsLegendary {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Legendary.Render("◆ LEGENDARY ◆")))
		b.WriteString("\n")
	}

	sentence := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Sentence)
	b.WriteString(sentence)
	b.WriteString("\n\n")

	choices := p.choices.View(false, "", "")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choices))

	return b.String()
}

// renderFeedback renders the resolved turn: outcome, the sentence with the
// selection echoed into the gaps, commentary, rule, and explanation.
func (p *PlayScreen) renderFeedback(width int) string {
	q := p.turn.Question()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")

	switch {
	case p.turn.Correct() && q.IsLegendary:
		b.WriteString(center.Render(theme.Legendary.Render("◆ Legendary! ◆")))
	case p.turn.Correct():
		b.WriteString(center.Render(theme.Correct.Render("Correct!")))
	case p.turn.Selected() == quiz.AnswerTimeout:
		b.WriteString(center.Render(theme.Incorrect.Render("Out of time")))
	case p.turn.Selected() == quiz.AnswerSkip:
		b.WriteString(center.Render(theme.Incorrect.Render("Skipped")))
	default:
		b.WriteString(center.Render(theme.Incorrect.Render("Not quite")))
	}
	b.WriteString("\n\n")

	filled := quiz.FillGaps(q.Sentence, p.turn.Selected())
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(filled))
	b.WriteString("\n\n")

	if !p.turn.Correct() {
		b.WriteString(center.Foreground(theme.Accent).Italic(true).Render(p.turn.Commentary()))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render("Correct answer: " + q.Correct))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.Secondary).Bold(true).Render(q.Rule))
	b.WriteString("\n")

	explanation := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(q.Explanation)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, explanation))
	b.WriteString("\n\n")

	// A resolved option list stays on screen so the reveal is visible.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		p.choices.View(true, p.turn.Selected(), q.Correct)))
	b.WriteString("\n")

	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))
	return b.String()
}
