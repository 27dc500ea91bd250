package device

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizpanel/internal/buttons"
	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/panel"
	"github.com/abhisek/quizpanel/internal/quiz"
	"github.com/abhisek/quizpanel/internal/router"
	"github.com/abhisek/quizpanel/internal/screen"
)

type stubStatus struct {
	st panel.Status
}

func (s *stubStatus) Status() panel.Status { return s.st }

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "glyphs" }
func (s *stubScreen) Title() string                           { return "Glyphs" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestDevice() (*DeviceScreen, *lcd.Buffer, *buttons.Latch, *stubStatus) {
	buf := lcd.NewBuffer(lcd.Standard16x2)
	latch := buttons.NewLatch(time.Hour)
	st := &stubStatus{}
	d := New(buf, latch, st, Inspector{
		Key:         "g",
		Description: "Glyphs",
		New:         func() screen.Screen { return &stubScreen{} },
	})
	return d, buf, latch, st
}

func TestKeysPressButtons(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want buttons.Button
	}{
		{"arrow up", specialKey(tea.KeyUp), buttons.Up},
		{"k", keyPress('k'), buttons.Up},
		{"arrow down", specialKey(tea.KeyDown), buttons.Down},
		{"j", keyPress('j'), buttons.Down},
		{"enter", specialKey(tea.KeyEnter), buttons.Confirm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, latch, _ := newTestDevice()
			d.Update(tt.msg)
			for _, b := range buttons.All() {
				assert.Equal(t, b == tt.want, latch.Pressed(b), b.String())
			}
		})
	}
}

func TestGlyphKeyPushesInspector(t *testing.T) {
	d, _, _, _ := newTestDevice()
	_, cmd := d.Update(keyPress('g'))
	require.NotNil(t, cmd)
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	assert.Equal(t, "Glyphs", push.Screen.Title())
}

func TestRefreshPicksUpFrame(t *testing.T) {
	d, buf, _, st := newTestDevice()
	buf.RegisterGlyph(lcd.PointerGlyphID, lcd.PointerGlyph)
	buf.SetBacklight(true)
	buf.WriteGlyph(lcd.PointerGlyphID)
	buf.WriteText(" Option A")
	st.st = panel.Status{Booted: true, Phase: quiz.PhaseSelecting, Questions: 3}

	require.NotNil(t, d.Init())
	_, cmd := d.Update(refreshMsg{gen: d.gen})
	assert.NotNil(t, cmd, "refresh re-arms its tick")

	assert.True(t, d.Frame().Backlight)
	view := d.View(80, 24)
	assert.Contains(t, view, "Option A")
	assert.Contains(t, view, "selecting")
}

func TestStaleRefreshIsDropped(t *testing.T) {
	d, buf, _, _ := newTestDevice()
	d.Init()
	old := d.gen
	require.NotNil(t, d.Resume())

	buf.SetBacklight(true)
	_, cmd := d.Update(refreshMsg{gen: old})
	assert.Nil(t, cmd, "superseded tick chain ends")
	assert.False(t, d.Frame().Backlight)

	_, cmd = d.Update(refreshMsg{gen: d.gen})
	assert.NotNil(t, cmd)
	assert.True(t, d.Frame().Backlight)
}

func TestStatusShowsVerdictAfterAnswer(t *testing.T) {
	d, _, _, st := newTestDevice()
	d.Init()

	st.st = panel.Status{Booted: true, Phase: quiz.PhaseShowingResult, Questions: 3, Score: 1, LastCorrect: true}
	d.Update(refreshMsg{gen: d.gen})
	assert.Contains(t, d.View(80, 24), "✓ correct")

	st.st.LastCorrect = false
	d.Update(refreshMsg{gen: d.gen})
	assert.Contains(t, d.View(80, 24), "✗ incorrect")

	st.st.Phase = quiz.PhaseSelecting
	d.Update(refreshMsg{gen: d.gen})
	view := d.View(80, 24)
	assert.NotContains(t, view, "correct")
}

func TestViewBeforeBoot(t *testing.T) {
	d, _, _, _ := newTestDevice()
	assert.Contains(t, d.View(80, 24), "booting")
}

func TestKeyHints(t *testing.T) {
	d, _, _, _ := newTestDevice()
	hints := d.KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "g", hints[2].Key)

	bare := New(lcd.NewBuffer(lcd.Standard16x2), buttons.NewLatch(time.Second), nil)
	for _, h := range bare.KeyHints() {
		assert.NotEqual(t, "g", h.Key)
	}
	_, cmd := bare.Update(keyPress('g'))
	assert.Nil(t, cmd)
}
