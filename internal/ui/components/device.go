package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizpanel/internal/ui/theme"
)

// Enclosure wraps the device parts in a case and centres it in the given
// area.
func Enclosure(content string, width, height int) string {
	box := theme.Enclosure.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
