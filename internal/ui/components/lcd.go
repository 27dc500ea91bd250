package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/ui/theme"
)

// GlyphRune picks a terminal character that resembles a custom glyph.
func GlyphRune(b lcd.Bitmap) rune {
	switch {
	case b == lcd.PointerGlyph:
		return '▸'
	case b.Empty():
		return ' '
	default:
		return '▒'
	}
}

// LCD renders a display frame as a character module with a backlight.
type LCD struct {
	Frame lcd.Frame
}

// NewLCD creates an LCD widget for frame.
func NewLCD(frame lcd.Frame) LCD {
	return LCD{Frame: frame}
}

// Lines returns the plain text rows, with glyphs substituted.
func (l LCD) Lines() []string {
	return l.Frame.Lines(func(id lcd.GlyphID) rune {
		if int(id) < lcd.MaxGlyphs && l.Frame.Defined[id] {
			return GlyphRune(l.Frame.Glyphs[id])
		}
		return ' '
	})
}

// View renders the module.
func (l LCD) View() string {
	bg := theme.LCDUnlit
	if l.Frame.Backlight {
		bg = theme.LCDLit
	}
	cell := lipgloss.NewStyle().
		Background(bg).
		Foreground(theme.LCDInk).
		Bold(true)

	rows := make([]string, 0, len(l.Frame.Cells))
	for _, line := range l.Lines() {
		rows = append(rows, cell.Render(" "+line+" "))
	}
	return theme.Module.Render(strings.Join(rows, "\n"))
}
