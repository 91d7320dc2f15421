package game

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marksaft/gramiz/internal/quiz"
	"github.com/marksaft/gramiz/internal/router"
	"github.com/marksaft/gramiz/internal/screen"
	"github.com/marksaft/gramiz/internal/ui/layout"
	"github.com/marksaft/gramiz/internal/ui/theme"
)

// CheckpointScreen is the break shown every ten questions: the new level
// and rank, plus one legendary grammar story.
type CheckpointScreen struct {
	deps Deps
}

var _ screen.Screen = (*CheckpointScreen)(nil)
var _ screen.KeyHintProvider = (*CheckpointScreen)(nil)

// NewCheckpoint creates the checkpoint screen for the session's active
// checkpoint.
func NewCheckpoint(deps Deps) *CheckpointScreen {
	return &CheckpointScreen{deps: deps}
}

func (c *CheckpointScreen) Init() tea.Cmd {
	return nil
}

func (c *CheckpointScreen) Title() string {
	return "Checkpoint"
}

func (c *CheckpointScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Keep going"},
	}
}

func (c *CheckpointScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "enter", " ":
		c.deps.Session.ContinueFromCheckpoint()
		return c, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: NewPlay(c.deps)}
		}
	}
	return c, nil
}

func (c *CheckpointScreen) View(width, height int) string {
	s := c.deps.Session
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Legendary.Render("★ CHECKPOINT ★")))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Level %d", s.CheckpointLevel())))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Secondary).Bold(true).Render(s.CheckpointRank()))
	b.WriteString("\n")
	if answered := len(s.History()); answered > 0 {
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d of %d correct so far", s.Score(), answered)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if factoid, ok := s.CheckpointFactoid(); ok {
		b.WriteString(center.Foreground(theme.TextDim).Render("— a true grammar story —"))
		b.WriteString("\n\n")

		story := quiz.FillGaps(factoid.Sentence, factoid.Correct)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Align(lipgloss.Center).
				Foreground(theme.Text).
				Bold(true).
				Render(story)))
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Legendary.Render(factoid.Rule)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text).
				Render(factoid.Explanation)))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.TextDim).Render("Press Enter to keep going..."))
	return b.String()
}
