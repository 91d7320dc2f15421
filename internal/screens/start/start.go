// Package start implements the home screen: mode selection, the daily
// streak, the high-score table, and the sound toggle.
package start

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marksaft/gramiz/internal/quiz"
	"github.com/marksaft/gramiz/internal/router"
	"github.com/marksaft/gramiz/internal/screen"
	"github.com/marksaft/gramiz/internal/screens/game"
	"github.com/marksaft/gramiz/internal/store"
	"github.com/marksaft/gramiz/internal/ui/components"
	"github.com/marksaft/gramiz/internal/ui/layout"
	"github.com/marksaft/gramiz/internal/ui/theme"
)

var banner = strings.Join([]string{
	`  ___  ____   __   _  _  __  ____`,
	` / __)(  _ \ / _\ ( \/ )(  )(__  )`,
	`( (_ \ )   //    \/ \/ \ )(  / _/`,
	` \___/(__\_)\_/\_/\_)(_/(__)(____)`,
}, "\n")

// StartScreen is the root screen of the application.
type StartScreen struct {
	deps game.Deps

	menu        components.Menu
	streak      int
	playedToday bool
	board       []store.LeaderboardEntry
	notice      string
	loaded      bool
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates the start screen.
func New(deps game.Deps) *StartScreen {
	s := &StartScreen{deps: deps}
	s.menu = components.NewMenu(s.menuItems())
	return s
}

func (s *StartScreen) menuItems() []components.MenuItem {
	soundLabel := "SOUND: ON"
	if s.deps.Sound.Muted() {
		soundLabel = "SOUND: OFF"
	}
	return []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			return s.startRun(quiz.ModeNormal)
		}},
		{Label: "DAILY CHALLENGE", Disabled: s.playedToday, Note: "(done today)", Action: func() tea.Cmd {
			return s.startRun(quiz.ModeDaily)
		}},
		{Label: soundLabel, Action: func() tea.Cmd {
			return s.toggleSound()
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// soundToggledMsg triggers a menu-label rebuild after a sound toggle.
type soundToggledMsg struct{}

// toggleSound flips the shared mute state and persists the new value. The
// same command backs both the menu item and the "m" shortcut.
func (s *StartScreen) toggleSound() tea.Cmd {
	muted := s.deps.Sound.Flip()
	prefs := s.deps.Prefs
	return func() tea.Msg {
		_ = prefs.SetMuted(context.Background(), muted)
		return soundToggledMsg{}
	}
}

// startFailedMsg carries a refused or failed run start.
type startFailedMsg struct {
	Err error
}

func (s *StartScreen) startRun(mode quiz.Mode) tea.Cmd {
	sess := s.deps.Session
	deps := s.deps
	return func() tea.Msg {
		if err := sess.Start(context.Background(), mode); err != nil {
			return startFailedMsg{Err: err}
		}
		return router.PushScreenMsg{Screen: game.NewPlay(deps)}
	}
}

// Init reloads the stats; it also re-runs when a game screen pops back to
// this one, so a fresh streak or leaderboard shows immediately.
func (s *StartScreen) Init() tea.Cmd {
	prefs := s.deps.Prefs
	sess := s.deps.Session
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := prefs.DailyStats(ctx)
		if err != nil {
			return game.HomeStatsMsg{Err: err}
		}
		board, err := prefs.Leaderboard(ctx)
		if err != nil {
			return game.HomeStatsMsg{Err: err}
		}
		return game.HomeStatsMsg{
			Streak:      stats.Streak,
			PlayedToday: quiz.PlayedToday(stats, sess.Clock().Now()),
			Board:       board,
		}
	}
}

func (s *StartScreen) Title() string {
	return "Home"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "M", Description: "Sound"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case game.HomeStatsMsg:
		if msg.Err != nil {
			s.notice = "Could not load your stats: " + msg.Err.Error()
			return s, nil
		}
		s.loaded = true
		s.streak = msg.Streak
		s.playedToday = msg.PlayedToday
		s.board = msg.Board
		s.rebuildMenu()
		return s, nil

	case soundToggledMsg:
		s.rebuildMenu()
		return s, nil

	case startFailedMsg:
		if errors.Is(msg.Err, quiz.ErrDailyAlreadyPlayed) {
			s.notice = "Today's challenge is done. Come back tomorrow."
			s.playedToday = true
			s.rebuildMenu()
		} else {
			s.notice = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "m" {
			return s, s.toggleSound()
		}
	}

	s.notice = ""
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// rebuildMenu recreates the items from current state, keeping the cursor.
func (s *StartScreen) rebuildMenu() {
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.menuItems())
	if selected < len(s.menu.Items) && !s.menu.Items[selected].Disabled {
		s.menu.Selected = selected
	}
}

func (s *StartScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("the grammar gauntlet"))
	b.WriteString("\n\n")

	if s.loaded && s.streak > 0 {
		b.WriteString(center.Render(
			theme.Legendary.Render(fmt.Sprintf("★ %d day streak", s.streak))))
		b.WriteString("\n\n")
	}

	if len(s.board) > 0 {
		b.WriteString(center.Foreground(theme.Secondary).Bold(true).Render("HIGH SCORES"))
		b.WriteString("\n")
		for i, entry := range s.board {
			line := fmt.Sprintf("%d.  %2d pts   %3ds   %s",
				i+1, entry.Score, entry.Time, entry.Date.Format("Jan 2"))
			b.WriteString(center.Foreground(theme.Text).Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Render(s.notice))
	}

	return b.String()
}
