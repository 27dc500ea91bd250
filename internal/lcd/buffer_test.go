package lcd

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferStartsBlank(t *testing.T) {
	b := NewBuffer(Standard16x2)
	f := b.Snapshot()

	require.Len(t, f.Cells, 2)
	assert.Equal(t, "                \n                ", f.Text())
	assert.False(t, f.Backlight)
}

func TestBufferWriteAtCursor(t *testing.T) {
	b := NewBuffer(Standard16x2)
	b.SetCursor(3, 1)
	b.WriteText("hola")

	lines := b.Snapshot().Lines(func(GlyphID) rune { return '*' })
	assert.Equal(t, "                ", lines[0])
	assert.Equal(t, "   hola         ", lines[1])
}

func TestBufferDropsOverflow(t *testing.T) {
	b := NewBuffer(Size{Cols: 4, Rows: 1})
	b.WriteText("abcdefgh")
	assert.Equal(t, "abcd", b.Snapshot().Text())

	b.SetCursor(0, 5)
	b.WriteText("zz")
	assert.Equal(t, "abcd", b.Snapshot().Text())
}

func TestBufferGlyphs(t *testing.T) {
	b := NewBuffer(Standard16x2)
	b.RegisterGlyph(PointerGlyphID, PointerGlyph)
	b.WriteGlyph(PointerGlyphID)
	b.WriteText(" A")

	f := b.Snapshot()
	assert.True(t, f.Defined[PointerGlyphID])
	assert.Equal(t, PointerGlyph, f.Glyphs[PointerGlyphID])
	assert.True(t, f.Cells[0][0].Glyph)
	assert.Equal(t, "> A", f.Lines(func(GlyphID) rune { return '>' })[0][:3])
}

func TestBufferRegisterMasksHighBits(t *testing.T) {
	b := NewBuffer(Standard16x2)
	b.RegisterGlyph(1, Bitmap{0xff})
	assert.Equal(t, byte(0x1f), b.Snapshot().Glyphs[1][0])
}

func TestBufferClearHomesCursor(t *testing.T) {
	b := NewBuffer(Standard16x2)
	b.SetCursor(5, 1)
	b.WriteText("x")
	b.Clear()
	b.WriteText("y")

	f := b.Snapshot()
	assert.Equal(t, 'y', f.Cells[0][0].Char)
	assert.Equal(t, ' ', f.Cells[1][5].Char)
}

func TestBufferVersionAdvances(t *testing.T) {
	b := NewBuffer(Standard16x2)
	v0 := b.Version()
	b.SetCursor(1, 1)
	assert.Equal(t, v0, b.Version(), "cursor moves are not visible changes")
	b.WriteText("a")
	assert.Greater(t, b.Version(), v0)
}

func TestBufferConcurrentSnapshot(t *testing.T) {
	b := NewBuffer(Standard16x2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			b.Clear()
			b.WriteText("abc")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = b.Snapshot()
		}
	}()
	wg.Wait()
}

func TestBitmapLines(t *testing.T) {
	lines := PointerGlyph.Lines('#', '.')
	require.Len(t, lines, 8)
	assert.Equal(t, ".....", lines[0])
	assert.Equal(t, "..#..", lines[1])
	assert.Equal(t, "#####", lines[3])
	assert.False(t, PointerGlyph.Empty())
	assert.True(t, Bitmap{}.Empty())
}
