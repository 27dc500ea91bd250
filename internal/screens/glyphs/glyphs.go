package glyphs

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/screen"
	"github.com/abhisek/quizpanel/internal/ui/components"
	"github.com/abhisek/quizpanel/internal/ui/layout"
	"github.com/abhisek/quizpanel/internal/ui/theme"
)

// FrameSource supplies the current display contents.
type FrameSource interface {
	Snapshot() lcd.Frame
}

// GlyphsScreen shows every custom glyph the display has registered.
type GlyphsScreen struct {
	frames FrameSource
}

var _ screen.Screen = (*GlyphsScreen)(nil)
var _ screen.KeyHintProvider = (*GlyphsScreen)(nil)

// New creates a GlyphsScreen.
func New(frames FrameSource) *GlyphsScreen {
	return &GlyphsScreen{frames: frames}
}

func (g *GlyphsScreen) Title() string                           { return "Glyphs" }
func (g *GlyphsScreen) Init() tea.Cmd                           { return nil }
func (g *GlyphsScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return g, nil }

func (g *GlyphsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Slots returns the ids of registered glyphs in slot order.
func (g *GlyphsScreen) Slots() []lcd.GlyphID {
	f := g.frames.Snapshot()
	var ids []lcd.GlyphID
	for i, ok := range f.Defined {
		if ok {
			ids = append(ids, lcd.GlyphID(i))
		}
	}
	return ids
}

func (g *GlyphsScreen) View(width, height int) string {
	f := g.frames.Snapshot()
	ids := g.Slots()
	if len(ids) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No custom glyphs registered yet"))
	}

	cards := make([]string, 0, len(ids)*2)
	for i, id := range ids {
		if i > 0 {
			cards = append(cards, "    ")
		}
		cards = append(cards, components.GlyphCard(id, f.Glyphs[id]))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	heading := theme.Title.Render(fmt.Sprintf("Custom glyphs (%d of %d slots)", len(ids), lcd.MaxGlyphs))
	body := lipgloss.JoinVertical(lipgloss.Center, heading, "", row)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
