package game

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/marksaft/gramiz/internal/router"
	"github.com/marksaft/gramiz/internal/screen"
	"github.com/marksaft/gramiz/internal/store"
	"github.com/marksaft/gramiz/internal/ui/components"
	"github.com/marksaft/gramiz/internal/ui/layout"
	"github.com/marksaft/gramiz/internal/ui/theme"
)

// ResultScreen shows the finished run and records it exactly once.
type ResultScreen struct {
	deps Deps

	menu      components.Menu
	board     []store.LeaderboardEntry
	supporter bool
	submitErr error
	copied    bool
	copyErr   error
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// NewResult creates the result screen for a session on its result screen.
func NewResult(deps Deps) *ResultScreen {
	r := &ResultScreen{deps: deps}
	r.menu = components.NewMenu(r.menuItems())
	return r
}

func (r *ResultScreen) menuItems() []components.MenuItem {
	s := r.deps.Session
	items := []components.MenuItem{
		{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			return r.restart()
		}},
		{Label: "ZEN MODE", Disabled: !s.Perfect(), Note: "(perfect runs only)", Action: func() tea.Cmd {
			if err := s.EnterZen(); err != nil {
				return nil
			}
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: NewZen(r.deps)}
			}
		}},
		{Label: "COPY RESULT", Action: func() tea.Cmd {
			text := r.shareText()
			return func() tea.Msg {
				return copiedMsg{Err: clipboard.WriteAll(text)}
			}
		}},
		{Label: r.supporterLabel(), Note: "(unlocks elite questions)", Action: func() tea.Cmd {
			on := !r.supporter
			prefs := r.deps.Prefs
			return func() tea.Msg {
				if err := prefs.SetSupporter(context.Background(), on); err != nil {
					return supporterToggledMsg{On: !on}
				}
				return supporterToggledMsg{On: on}
			}
		}},
		{Label: "HOME", Action: func() tea.Cmd {
			s.GoHome()
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	}
	return items
}

// restart begins a fresh run in the same mode and swaps back to the
// question screen.
func (r *ResultScreen) restart() tea.Cmd {
	s := r.deps.Session
	mode := s.Mode()
	return func() tea.Msg {
		if err := s.Start(context.Background(), mode); err != nil {
			// A repeated daily (or an emptied pool) falls back home.
			s.GoHome()
			return router.PopScreenMsg{}
		}
		return router.ReplaceScreenMsg{Screen: NewPlay(r.deps)}
	}
}

func (r *ResultScreen) supporterLabel() string {
	if r.supporter {
		return "SUPPORTER: ON"
	}
	return "SUPPORTER: OFF"
}

// rebuildMenu recreates the items from current state, keeping the cursor.
func (r *ResultScreen) rebuildMenu() {
	selected := r.menu.Selected
	r.menu = components.NewMenu(r.menuItems())
	if selected < len(r.menu.Items) && !r.menu.Items[selected].Disabled {
		r.menu.Selected = selected
	}
}

func (r *ResultScreen) shareText() string {
	s := r.deps.Session
	label := "Gramiz"
	if s.IsDaily() {
		label = "Gramiz daily"
	}
	return fmt.Sprintf("%s: %d/%d correct, %ds banked", label, s.Score(), s.Len(), s.TotalTimeRemaining())
}

// Init records the run and loads the leaderboard for display. Submission
// is idempotent, so re-entering this screen cannot double-count.
func (r *ResultScreen) Init() tea.Cmd {
	s := r.deps.Session
	prefs := r.deps.Prefs
	return func() tea.Msg {
		ctx := context.Background()
		if err := s.SubmitResult(ctx); err != nil {
			return submittedMsg{Err: err}
		}
		board, err := prefs.Leaderboard(ctx)
		if err != nil {
			return boardLoadedMsg{Err: err}
		}
		supporter, _ := prefs.Supporter(ctx)
		return boardLoadedMsg{Board: board, Supporter: supporter}
	}
}

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		r.submitErr = msg.Err
		return r, nil
	case boardLoadedMsg:
		if msg.Err == nil {
			r.board = msg.Board
			r.supporter = msg.Supporter
			r.rebuildMenu()
		}
		return r, nil
	case supporterToggledMsg:
		r.supporter = msg.On
		r.rebuildMenu()
		return r, nil
	case copiedMsg:
		r.copied = msg.Err == nil
		r.copyErr = msg.Err
		return r, nil
	}

	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	s := r.deps.Session
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")

	if s.Perfect() {
		b.WriteString(center.Render(theme.Legendary.Render("★ PERFECT RUN ★")))
	} else {
		b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Run complete"))
	}
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d / %d correct", s.Score(), s.Len())))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d seconds banked", s.TotalTimeRemaining())))
	b.WriteString("\n")
	if s.Len() > 0 {
		bar := components.NewProgressBar("Accuracy", float64(s.Score())/float64(s.Len()), true, min(width-20, 44))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	if tally := components.Tally(s.History()); tally != "" {
		b.WriteString(center.Render(tally))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if r.submitErr != nil {
		b.WriteString(center.Foreground(theme.Error).
			Render("Could not save this run: " + r.submitErr.Error()))
		b.WriteString("\n\n")
	}

	if len(r.board) > 0 {
		b.WriteString(center.Foreground(theme.Secondary).Bold(true).Render("HIGH SCORES"))
		b.WriteString("\n")
		for i, entry := range r.board {
			line := fmt.Sprintf("%d.  %2d pts   %3ds   %s",
				i+1, entry.Score, entry.Time, entry.Date.Format("Jan 2"))
			b.WriteString(center.Foreground(theme.Text).Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if r.copied {
		b.WriteString(center.Foreground(theme.Success).Render("Result copied to clipboard."))
		b.WriteString("\n")
	} else if r.copyErr != nil {
		b.WriteString(center.Foreground(theme.Error).Render("Clipboard unavailable: " + r.shareText()))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.menu.View()))
	return b.String()
}
