package game

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marksaft/gramiz/internal/quiz"
	"github.com/marksaft/gramiz/internal/router"
	"github.com/marksaft/gramiz/internal/screen"
	"github.com/marksaft/gramiz/internal/ui/components"
	"github.com/marksaft/gramiz/internal/ui/layout"
	"github.com/marksaft/gramiz/internal/ui/theme"
)

// PlayScreen serves one question at a time from the running session.
type PlayScreen struct {
	deps Deps

	turn    *quiz.Turn
	choices components.ChoiceList
	seq     int

	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// NewPlay creates the question screen for an already-started session.
func NewPlay(deps Deps) *PlayScreen {
	return &PlayScreen{deps: deps}
}

func (p *PlayScreen) Init() tea.Cmd {
	return p.beginTurn()
}

func (p *PlayScreen) Title() string {
	if p.deps.Session.IsDaily() {
		return "Daily Challenge"
	}
	return "Quiz"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave run"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if p.turn != nil && p.turn.Resolved() {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "S", Description: "Skip"},
		{Key: "Esc", Description: "Leave"},
	}
}

// beginTurn starts the turn for the session's current question and kicks
// off its countdown.
func (p *PlayScreen) beginTurn() tea.Cmd {
	p.turn = p.deps.Session.StartTurn()
	if p.turn == nil {
		return nil
	}
	p.choices = components.NewChoiceList(p.turn.Question().Options)
	p.seq++
	return p.tickCmd()
}

func (p *PlayScreen) tickCmd() tea.Cmd {
	seq := p.seq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{Seq: seq}
	})
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return p.handleTick(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != p.seq || p.turn == nil || p.turn.Resolved() {
		return p, nil
	}
	p.turn.Tick()
	if p.turn.Resolved() {
		return p, nil
	}
	return p, p.tickCmd()
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.confirmQuit {
		switch key {
		case "y", "Y":
			p.deps.Session.GoHome()
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.confirmQuit = false
		}
		return p, nil
	}

	if p.turn == nil {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Feedback is up; any key advances the run.
	if p.turn.Resolved() {
		return p.advance()
	}

	switch key {
	case "esc":
		p.confirmQuit = true
		return p, nil
	case "s", "S":
		p.turn.Skip()
		return p, nil
	case "enter":
		p.turn.Select(p.choices.Current())
		return p, nil
	}

	var cmd tea.Cmd
	p.choices, cmd = p.choices.Update(msg)
	return p, cmd
}

// advance folds the resolved turn into the session and moves to whatever
// screen the session says comes next.
func (p *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	s := p.deps.Session
	if err := s.CompleteTurn(context.Background(), p.turn.Correct(), p.turn.TimeRemaining()); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	switch s.Screen() {
	case quiz.ScreenCheckpoint:
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: NewCheckpoint(p.deps)}
		}
	case quiz.ScreenResult:
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: NewResult(p.deps)}
		}
	default:
		return p, p.beginTurn()
	}
}

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n\n  Error: " + p.errMsg + "\n\n  Press any key to go back.")
	}
	if p.confirmQuit {
		return renderQuitConfirm(width)
	}
	if p.turn == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No question to show.")
	}
	if p.turn.Resolved() {
		return p.renderFeedback(width)
	}
	return p.renderQuestion(width)
}

func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return "\n\n\n" +
		center.Foreground(theme.Text).Bold(true).Render("Leave this run?") + "\n" +
		center.Foreground(theme.TextDim).Render("An abandoned run records nothing.") + "\n\n" +
		center.Foreground(theme.Error).Render("[Y] Yes, back to the start") + "\n" +
		center.Foreground(theme.Primary).Render("[N] No, keep going")
}
