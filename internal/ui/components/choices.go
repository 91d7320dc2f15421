package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marksaft/gramiz/internal/ui/theme"
)

// ChoiceList is the answer selector for a question. It only moves the
// cursor; committing the choice is the caller's decision, and after
// resolution the list is rendered read-only with the outcome colors.
type ChoiceList struct {
	Options []string
	Cursor  int
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// Update handles cursor movement. Number keys jump straight to an option.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < len(c.Options) {
			c.Cursor = idx
		}
	}

	return c, nil
}

// Current returns the option under the cursor.
func (c ChoiceList) Current() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// View renders the options. While unresolved the cursor row is highlighted;
// once resolved the correct option goes green, a wrong pick goes red, and
// the rest dim out.
func (c ChoiceList) View(resolved bool, chosen, correct string) string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if !resolved && i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		if resolved {
			switch {
			case opt == correct:
				s += theme.Correct.Render(line) + "\n"
			case opt == chosen:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Cursor {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}
	return s
}
