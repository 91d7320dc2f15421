package game

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marksaft/gramiz/internal/quiz"
	"github.com/marksaft/gramiz/internal/router"
	"github.com/marksaft/gramiz/internal/screen"
	"github.com/marksaft/gramiz/internal/ui/layout"
	"github.com/marksaft/gramiz/internal/ui/theme"
)

// breathInterval is one breathing phase; a story lingers for three full
// breaths before the next one rotates in.
const (
	breathInterval  = 4 * time.Second
	breathsPerStory = 6
)

// ZenScreen is the reward for a perfect run: a breathing rhythm over an
// unhurried rotation through the legendary grammar stories. No timer, no
// score.
type ZenScreen struct {
	deps    Deps
	breaths int
	page    int
}

var _ screen.Screen = (*ZenScreen)(nil)
var _ screen.KeyHintProvider = (*ZenScreen)(nil)

// NewZen creates the zen screen.
func NewZen(deps Deps) *ZenScreen {
	return &ZenScreen{deps: deps}
}

func (z *ZenScreen) Init() tea.Cmd {
	return zenTickCmd()
}

func zenTickCmd() tea.Cmd {
	return tea.Tick(breathInterval, func(time.Time) tea.Msg {
		return zenTickMsg{}
	})
}

func (z *ZenScreen) Title() string {
	return "Zen"
}

func (z *ZenScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Browse"},
		{Key: "Esc", Description: "Home"},
	}
}

func (z *ZenScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case zenTickMsg:
		z.breaths++
		if z.breaths%breathsPerStory == 0 {
			z.page++
		}
		return z, zenTickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			z.deps.Session.GoHome()
			return z, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			z.page--
			return z, nil
		case "right", "l":
			z.page++
			return z, nil
		}
	}
	return z, nil
}

func (z *ZenScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Secondary).Render("~ zen mode ~"))
	b.WriteString("\n")
	breath := "( breathe in )"
	if z.breaths%2 == 1 {
		breath = "(  breathe out  )"
	}
	b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render(breath))
	b.WriteString("\n\n")

	legends := z.deps.Bank.Legendaries()
	if len(legends) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render("Nothing but calm here."))
		return b.String()
	}
	idx := ((z.page % len(legends)) + len(legends)) % len(legends)
	factoid := legends[idx]

	story := quiz.FillGaps(factoid.Sentence, factoid.Correct)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Width(min(width-10, 64)).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(story)))
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Legendary.Render(factoid.Rule)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Width(min(width-10, 64)).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(factoid.Explanation)))
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("You earned this."))
	return b.String()
}
