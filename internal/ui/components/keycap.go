package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizpanel/internal/ui/theme"
)

// KeyCap draws one physical push button with its keyboard binding.
type KeyCap struct {
	Label string
	Key   string
	Held  bool
}

// NewKeyCap creates a key cap.
func NewKeyCap(label, key string, held bool) KeyCap {
	return KeyCap{Label: label, Key: key, Held: held}
}

// View renders the cap, lit while held, with its key hint below.
func (k KeyCap) View() string {
	style := theme.KeyUp
	if k.Held {
		style = theme.KeyDown
	}
	body := style.Render(k.Label)
	hint := theme.Hint.Render(k.Key)
	return lipgloss.JoinVertical(lipgloss.Center, body, hint)
}

// KeyRow lays out caps side by side.
func KeyRow(caps ...KeyCap) string {
	views := make([]string, 0, len(caps)*2)
	for i, c := range caps {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, c.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
