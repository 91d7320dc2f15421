package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/marksaft/gramiz/internal/ui/theme"
)

// Tally renders the per-question outcome history as a row of marks,
// oldest first.
func Tally(history []bool) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	for i, correct := range history {
		if i > 0 {
			b.WriteString(" ")
		}
		if correct {
			b.WriteString(theme.Correct.Render("●"))
		} else {
			b.WriteString(theme.Incorrect.Render("○"))
		}
	}
	return lipgloss.NewStyle().Render(b.String())
}
