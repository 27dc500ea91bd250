package glyphs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizpanel/internal/lcd"
)

func TestEmptyGlyphTable(t *testing.T) {
	g := New(lcd.NewBuffer(lcd.Standard16x2))
	assert.Empty(t, g.Slots())
	assert.Contains(t, g.View(80, 24), "No custom glyphs")
}

func TestRegisteredGlyphsShown(t *testing.T) {
	buf := lcd.NewBuffer(lcd.Standard16x2)
	buf.RegisterGlyph(lcd.PointerGlyphID, lcd.PointerGlyph)
	buf.RegisterGlyph(3, lcd.Bitmap{0x1f})
	g := New(buf)

	assert.Equal(t, []lcd.GlyphID{0, 3}, g.Slots())
	view := g.View(100, 30)
	assert.Contains(t, view, "slot 0")
	assert.Contains(t, view, "slot 3")
	assert.Contains(t, view, "Custom glyphs (2 of 8 slots)")
	assert.Equal(t, "Glyphs", g.Title())
}
