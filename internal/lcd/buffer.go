package lcd

import (
	"strings"
	"sync"
)

// Cell is one character position on the display.
type Cell struct {
	Char  rune
	Glyph bool
	ID    GlyphID
}

var blank = Cell{Char: ' '}

// Frame is an immutable copy of the display contents.
type Frame struct {
	Size      Size
	Cells     [][]Cell
	Backlight bool
	Glyphs    [MaxGlyphs]Bitmap
	Defined   [MaxGlyphs]bool
}

// Lines renders each row as a string, replacing glyph cells with glyphRune.
func (f Frame) Lines(glyphRune func(GlyphID) rune) []string {
	lines := make([]string, 0, len(f.Cells))
	for _, row := range f.Cells {
		var sb strings.Builder
		for _, c := range row {
			if c.Glyph {
				sb.WriteRune(glyphRune(c.ID))
				continue
			}
			sb.WriteRune(c.Char)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Text renders the frame with '>' for every custom glyph, one row per line.
func (f Frame) Text() string {
	return strings.Join(f.Lines(func(GlyphID) rune { return '>' }), "\n")
}

// Buffer is an in-memory Display. Writes past the last column or row are
// dropped. It is safe to read snapshots while another goroutine writes.
type Buffer struct {
	mu        sync.RWMutex
	size      Size
	cells     [][]Cell
	col, row  int
	backlight bool
	glyphs    [MaxGlyphs]Bitmap
	defined   [MaxGlyphs]bool
	version   uint64
}

var _ Display = (*Buffer)(nil)

// NewBuffer creates a blank buffer of the given geometry.
func NewBuffer(size Size) *Buffer {
	b := &Buffer{size: size}
	b.cells = make([][]Cell, size.Rows)
	for r := range b.cells {
		b.cells[r] = make([]Cell, size.Cols)
	}
	b.clear()
	return b
}

// Size returns the buffer geometry.
func (b *Buffer) Size() Size {
	return b.size
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clear()
	b.version++
}

func (b *Buffer) clear() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = blank
		}
	}
	b.col, b.row = 0, 0
}

func (b *Buffer) SetCursor(col, row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.col, b.row = col, row
}

func (b *Buffer) WriteText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range s {
		b.put(Cell{Char: r})
	}
	b.version++
}

func (b *Buffer) WriteGlyph(id GlyphID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if int(id) >= MaxGlyphs {
		id = GlyphID(int(id) % MaxGlyphs)
	}
	b.put(Cell{Glyph: true, ID: id})
	b.version++
}

// put writes at the cursor and advances it. Caller holds the lock.
func (b *Buffer) put(c Cell) {
	if b.row >= 0 && b.row < b.size.Rows && b.col >= 0 && b.col < b.size.Cols {
		b.cells[b.row][b.col] = c
	}
	b.col++
}

func (b *Buffer) RegisterGlyph(id GlyphID, rows Bitmap) {
	b.mu.Lock()
	defer b.mu.Unlock()
	slot := int(id) % MaxGlyphs
	for i := range rows {
		rows[i] &= 0x1f
	}
	b.glyphs[slot] = rows
	b.defined[slot] = true
	b.version++
}

func (b *Buffer) SetBacklight(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.backlight = on
	b.version++
}

// Version increases on every visible change; readers use it to skip
// redundant redraws.
func (b *Buffer) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// Snapshot copies the current contents.
func (b *Buffer) Snapshot() Frame {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cells := make([][]Cell, len(b.cells))
	for r := range b.cells {
		cells[r] = append([]Cell(nil), b.cells[r]...)
	}
	return Frame{
		Size:      b.size,
		Cells:     cells,
		Backlight: b.backlight,
		Glyphs:    b.glyphs,
		Defined:   b.defined,
	}
}
