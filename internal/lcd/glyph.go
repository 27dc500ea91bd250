package lcd

import "strings"

// Bitmap is a 5x8 character cell; the low five bits of each row are used,
// bit 4 being the leftmost pixel.
type Bitmap [8]byte

// PointerGlyph is a right-pointing arrow used to mark the highlighted option.
var PointerGlyph = Bitmap{
	0b00000,
	0b00100,
	0b00110,
	0b11111,
	0b00110,
	0b00100,
	0b00000,
	0b00000,
}

// Lines renders the bitmap as eight strings of five runes each.
func (b Bitmap) Lines(on, off rune) []string {
	lines := make([]string, 0, len(b))
	for _, row := range b {
		var sb strings.Builder
		for bit := 4; bit >= 0; bit-- {
			if row&(1<<bit) != 0 {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Empty reports whether no pixel is set.
func (b Bitmap) Empty() bool {
	for _, row := range b {
		if row&0x1f != 0 {
			return false
		}
	}
	return true
}
