// Package lcdtest provides a recording Display for tests.
package lcdtest

import (
	"fmt"

	"github.com/abhisek/quizpanel/internal/lcd"
)

// Recorder logs every Display call and mirrors it into a Buffer so tests
// can assert on both the write sequence and the resulting screen.
type Recorder struct {
	ops []string
	buf *lcd.Buffer
}

var _ lcd.Display = (*Recorder)(nil)

// New creates a Recorder backed by a 16x2 buffer.
func New() *Recorder {
	return NewSized(lcd.Standard16x2)
}

// NewSized creates a Recorder with the given geometry.
func NewSized(size lcd.Size) *Recorder {
	return &Recorder{buf: lcd.NewBuffer(size)}
}

func (r *Recorder) Clear() {
	r.ops = append(r.ops, "clear")
	r.buf.Clear()
}

func (r *Recorder) SetCursor(col, row int) {
	r.ops = append(r.ops, fmt.Sprintf("cursor %d,%d", col, row))
	r.buf.SetCursor(col, row)
}

func (r *Recorder) WriteText(s string) {
	r.ops = append(r.ops, fmt.Sprintf("text %q", s))
	r.buf.WriteText(s)
}

func (r *Recorder) WriteGlyph(id lcd.GlyphID) {
	r.ops = append(r.ops, fmt.Sprintf("glyph %d", id))
	r.buf.WriteGlyph(id)
}

func (r *Recorder) RegisterGlyph(id lcd.GlyphID, rows lcd.Bitmap) {
	r.ops = append(r.ops, fmt.Sprintf("register %d", id))
	r.buf.RegisterGlyph(id, rows)
}

func (r *Recorder) SetBacklight(on bool) {
	r.ops = append(r.ops, fmt.Sprintf("backlight %t", on))
	r.buf.SetBacklight(on)
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []string {
	return append([]string(nil), r.ops...)
}

// Reset forgets recorded calls but keeps the screen contents.
func (r *Recorder) Reset() {
	r.ops = nil
}

// Lines returns the current screen rows, glyphs shown as '>'.
func (r *Recorder) Lines() []string {
	return r.buf.Snapshot().Lines(func(lcd.GlyphID) rune { return '>' })
}

// Screen returns the current screen as text.
func (r *Recorder) Screen() string {
	return r.buf.Snapshot().Text()
}

// Frame returns a full snapshot.
func (r *Recorder) Frame() lcd.Frame {
	return r.buf.Snapshot()
}
