package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/ui/theme"
)

// GlyphGrid magnifies a 5x8 glyph, two terminal columns per pixel.
func GlyphGrid(b lcd.Bitmap) string {
	on := lipgloss.NewStyle().Background(theme.LCDInk).Render("  ")
	off := lipgloss.NewStyle().Background(theme.LCDLit).Render("  ")

	rows := make([]string, 0, len(b))
	for _, line := range b.Lines('#', '.') {
		var sb strings.Builder
		for _, r := range line {
			if r == '#' {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
		}
		rows = append(rows, sb.String())
	}
	return theme.Module.Render(strings.Join(rows, "\n"))
}

// GlyphCard shows a glyph slot with its hex row values.
func GlyphCard(id lcd.GlyphID, b lcd.Bitmap) string {
	hex := make([]string, 0, len(b))
	for _, row := range b {
		hex = append(hex, fmt.Sprintf("0x%02X", row))
	}
	caption := theme.Body.Render(fmt.Sprintf("slot %d  %c", id, GlyphRune(b)))
	values := theme.Hint.Render(strings.Join(hex, " "))
	return lipgloss.JoinVertical(lipgloss.Center, caption, GlyphGrid(b), values)
}
