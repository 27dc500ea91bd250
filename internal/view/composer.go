// Package view composes the quiz screens onto a character display.
//
// Every method clears or overwrites the display with one screen's worth of
// text. Output depends only on the arguments and the quiz config, so tests
// can drive it with a recording display.
package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/quiz"
)

// MaxLoadingDots is the length of the boot animation.
const MaxLoadingDots = 3

// Composer draws quiz screens.
type Composer struct {
	cfg  quiz.Config
	disp lcd.Display
}

// New creates a Composer drawing on disp.
func New(cfg quiz.Config, disp lcd.Display) *Composer {
	return &Composer{cfg: cfg, disp: disp}
}

// Setup registers the pointer glyph and turns the backlight on.
func (c *Composer) Setup() {
	c.disp.RegisterGlyph(lcd.PointerGlyphID, lcd.PointerGlyph)
	c.disp.SetBacklight(true)
}

// Center writes text centred on row. Text wider than the display starts at
// column 0 and is cut off by the display.
func (c *Composer) Center(text string, row int) {
	c.disp.SetCursor(CenterPad(text, c.cfg.Display.Cols), row)
	c.disp.WriteText(text)
}

// CenterPad returns the leading spaces needed to centre text in width columns.
func CenterPad(text string, width int) int {
	pad := (width - utf8.RuneCountInString(text)) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

// Title shows the quiz title alone on the first row.
func (c *Composer) Title() {
	c.disp.Clear()
	c.Center(c.cfg.Messages.Title, 0)
}

// Welcome shows the title with the loading message and dots dots after it.
func (c *Composer) Welcome(dots int) {
	if dots < 0 {
		dots = 0
	}
	if dots > MaxLoadingDots {
		dots = MaxLoadingDots
	}
	c.Title()
	c.Center(c.cfg.Messages.Loading, 1)
	if dots > 0 {
		c.disp.WriteText(strings.Repeat(".", dots))
	}
}

// Instructions shows how to answer.
func (c *Composer) Instructions() {
	c.disp.Clear()
	c.Center(c.cfg.Messages.ChooseOption, 0)
	c.Center(c.cfg.Messages.Instruction, 1)
}

// Banner shows the question number for question q (zero-based).
func (c *Composer) Banner(q int) {
	c.disp.Clear()
	c.Center(fmt.Sprintf(c.cfg.Messages.QuestionFormat, q+1, c.cfg.QuestionCount()), 0)
}

// Options lists the visible options with the pointer on selected.
func (c *Composer) Options(selected int) {
	c.disp.Clear()
	w := quiz.VisibleWindow(selected, c.cfg.OptionCount(), c.cfg.Display.Rows)
	for i := w.Start; i < w.End(); i++ {
		c.disp.SetCursor(0, i-w.Start)
		if i == selected {
			c.disp.WriteGlyph(lcd.PointerGlyphID)
		} else {
			c.disp.WriteText(" ")
		}
		c.disp.WriteText(" " + c.cfg.Options[i])
	}
}

// Result shows whether the answer was right, and on a miss the expected
// option when that toggle is on.
func (c *Composer) Result(correct bool, answer quiz.OptionID) {
	c.disp.Clear()
	if correct {
		c.Center(c.cfg.Messages.Correct, 0)
		return
	}
	c.Center(c.cfg.Messages.Incorrect, 0)
	if c.cfg.Toggles.ShowCorrectAnswer {
		c.disp.SetCursor(0, 1)
		c.disp.WriteText(c.cfg.Messages.WasPrefix + c.cfg.Label(answer))
	}
}

// Continue prompts for Confirm after a result.
func (c *Composer) Continue() {
	c.disp.Clear()
	c.Center(c.cfg.Messages.Continue1, 0)
	c.Center(c.cfg.Messages.Continue2, 1)
}

// Final shows the end-of-quiz banner.
func (c *Composer) Final() {
	c.disp.Clear()
	c.Center(c.cfg.Messages.Final1, 0)
	if c.cfg.Messages.Final2 != "" {
		c.Center(c.cfg.Messages.Final2, 1)
	}
}

// Percent clears the screen and, when that toggle is on, shows the final
// percentage on the first row.
func (c *Composer) Percent(percent int) {
	c.disp.Clear()
	if c.cfg.Toggles.ShowPercentage {
		c.Center(fmt.Sprintf(c.cfg.Messages.PercentFormat, percent), 0)
	}
}

// Feedback writes the tier message on the second row, keeping the first.
func (c *Composer) Feedback(percent int) {
	c.clearRow(1)
	c.Center(c.cfg.FeedbackMessage(percent), 1)
}

// PressToEnd replaces the second row with the restart prompt.
func (c *Composer) PressToEnd() {
	c.clearRow(1)
	c.disp.SetCursor(0, 1)
	c.disp.WriteText(c.cfg.Messages.PressToEnd)
}

func (c *Composer) clearRow(row int) {
	if row >= c.cfg.Display.Rows {
		return
	}
	c.disp.SetCursor(0, row)
	c.disp.WriteText(strings.Repeat(" ", c.cfg.Display.Cols))
}
