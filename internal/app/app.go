package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marksaft/gramiz/internal/bank"
	"github.com/marksaft/gramiz/internal/effects"
	"github.com/marksaft/gramiz/internal/quiz"
	"github.com/marksaft/gramiz/internal/router"
	"github.com/marksaft/gramiz/internal/screen"
	"github.com/marksaft/gramiz/internal/screens/game"
	"github.com/marksaft/gramiz/internal/screens/start"
	"github.com/marksaft/gramiz/internal/store"
	"github.com/marksaft/gramiz/internal/ui/layout"
)

// Options wires the application's dependencies.
type Options struct {
	Bank  *bank.Bank
	Prefs store.PrefsRepo
	Runs  store.RunRepo
	Sound *effects.Toggle
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sound  *effects.Toggle
	streak int
	width  int
	height int
}

// newAppModel assembles the session and the start screen.
func newAppModel(opts Options) AppModel {
	player := &effects.Muted{
		Player:  &effects.Terminal{},
		IsMuted: opts.Sound.Muted,
	}
	session := quiz.NewSession(quiz.Config{
		Bank:    opts.Bank,
		Prefs:   opts.Prefs,
		Runs:    opts.Runs,
		Effects: player,
	})
	deps := game.Deps{
		Session: session,
		Bank:    opts.Bank,
		Prefs:   opts.Prefs,
		Sound:   opts.Sound,
	}
	return AppModel{
		router: router.New(start.New(deps)),
		sound:  opts.Sound,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case game.HomeStatsMsg:
		// Also consumed by the start screen; the root model only reads
		// the streak for the header.
		if msg.Err == nil {
			m.streak = msg.Streak
		}

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.streak, m.sound.Muted(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
