package lcd

// GlyphID addresses one of the eight CGRAM slots of an HD44780-style controller.
type GlyphID uint8

// MaxGlyphs is the number of custom glyph slots.
const MaxGlyphs = 8

// PointerGlyphID is the slot holding the selection arrow.
const PointerGlyphID GlyphID = 0

// Display is a fixed-width character output device.
type Display interface {
	// Clear blanks every cell and homes the cursor.
	Clear()

	// SetCursor moves the write position. Out-of-range positions are ignored
	// by writes rather than rejected here.
	SetCursor(col, row int)

	// WriteText writes s at the cursor and advances it.
	WriteText(s string)

	// WriteGlyph writes a registered custom glyph at the cursor.
	WriteGlyph(id GlyphID)

	// RegisterGlyph stores a 5x8 bitmap in slot id.
	RegisterGlyph(id GlyphID, rows Bitmap)

	// SetBacklight switches the backlight.
	SetBacklight(on bool)
}

// Size is the character geometry of a display.
type Size struct {
	Cols int
	Rows int
}

// Standard16x2 is the common 1602 module geometry.
var Standard16x2 = Size{Cols: 16, Rows: 2}
