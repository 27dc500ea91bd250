// Package device is the simulator's main screen: the LCD module, the three
// push buttons and a status line.
package device

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizpanel/internal/buttons"
	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/panel"
	"github.com/abhisek/quizpanel/internal/quiz"
	"github.com/abhisek/quizpanel/internal/router"
	"github.com/abhisek/quizpanel/internal/screen"
	"github.com/abhisek/quizpanel/internal/ui/components"
	"github.com/abhisek/quizpanel/internal/ui/layout"
	"github.com/abhisek/quizpanel/internal/ui/theme"
)

// refreshInterval is how often the LCD is re-read.
const refreshInterval = 50 * time.Millisecond

// refreshMsg carries the generation of the tick chain that produced it.
// Ticks from a superseded chain are dropped.
type refreshMsg struct {
	gen int
}

// FrameSource supplies the current display contents.
type FrameSource interface {
	Snapshot() lcd.Frame
}

// Keypad receives button presses from the keyboard.
type Keypad interface {
	Press(b buttons.Button)
	Pressed(b buttons.Button) bool
}

// StatusSource reports the control loop's view of the session.
type StatusSource interface {
	Status() panel.Status
}

// Inspector is a secondary screen reachable from the device with one key.
type Inspector struct {
	Key         string
	Description string
	New         func() screen.Screen
}

// DeviceScreen renders the simulated device and forwards keys as presses.
type DeviceScreen struct {
	frames     FrameSource
	keypad     Keypad
	status     StatusSource
	inspectors []Inspector

	frame lcd.Frame
	st    panel.Status
	gen   int
}

var _ screen.Screen = (*DeviceScreen)(nil)
var _ screen.KeyHintProvider = (*DeviceScreen)(nil)
var _ screen.Resumer = (*DeviceScreen)(nil)

// New creates a DeviceScreen. status may be nil. Each inspector is pushed
// when its key is pressed.
func New(frames FrameSource, keypad Keypad, status StatusSource, inspectors ...Inspector) *DeviceScreen {
	d := &DeviceScreen{
		frames:     frames,
		keypad:     keypad,
		status:     status,
		inspectors: inspectors,
	}
	d.refresh()
	return d
}

func (d *DeviceScreen) Title() string {
	return "Device"
}

func (d *DeviceScreen) Init() tea.Cmd {
	d.gen++
	return refreshCmd(d.gen)
}

// Resume restarts the refresh ticks, which stop while another screen is on
// top.
func (d *DeviceScreen) Resume() tea.Cmd {
	d.refresh()
	return d.Init()
}

func (d *DeviceScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "OK"},
	}
	for _, in := range d.inspectors {
		hints = append(hints, layout.KeyHint{Key: in.Key, Description: in.Description})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (d *DeviceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		if msg.gen != d.gen {
			return d, nil
		}
		d.refresh()
		return d, refreshCmd(d.gen)

	case tea.KeyPressMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *DeviceScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		d.keypad.Press(buttons.Up)
	case "down", "j":
		d.keypad.Press(buttons.Down)
	case "enter", "space", " ":
		d.keypad.Press(buttons.Confirm)
	default:
		for _, in := range d.inspectors {
			if msg.String() == in.Key {
				s := in.New()
				return d, func() tea.Msg { return router.PushScreenMsg{Screen: s} }
			}
		}
	}
	return d, nil
}

func (d *DeviceScreen) refresh() {
	d.frame = d.frames.Snapshot()
	if d.status != nil {
		d.st = d.status.Status()
	}
}

// Frame returns the last LCD snapshot taken.
func (d *DeviceScreen) Frame() lcd.Frame {
	return d.frame
}

func (d *DeviceScreen) View(width, height int) string {
	module := components.NewLCD(d.frame).View()

	keys := components.KeyRow(
		components.NewKeyCap("▲", "↑ / k", d.keypad.Pressed(buttons.Up)),
		components.NewKeyCap("▼", "↓ / j", d.keypad.Pressed(buttons.Down)),
		components.NewKeyCap("OK", "enter", d.keypad.Pressed(buttons.Confirm)),
	)

	parts := []string{module, "", keys}
	if d.status != nil {
		parts = append(parts, "", d.renderStatus(lipgloss.Width(module)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return components.Enclosure(content, width, height)
}

func (d *DeviceScreen) renderStatus(width int) string {
	if !d.st.Booted {
		return theme.Hint.Render("booting…")
	}
	answered := d.st.Question
	if d.st.Phase == quiz.PhaseShowingResult {
		answered++
	}
	bar := components.NewProgressBar("", answered, d.st.Questions, width).View()
	line := theme.Hint.Render(fmt.Sprintf("%s · score %d", d.st.Phase, d.st.Score))
	if d.st.Phase != quiz.PhaseShowingResult {
		return lipgloss.JoinVertical(lipgloss.Center, bar, line)
	}
	verdict := theme.Incorrect.Render("✗ incorrect")
	if d.st.LastCorrect {
		verdict = theme.Correct.Render("✓ correct")
	}
	return lipgloss.JoinVertical(lipgloss.Center, bar, line, verdict)
}

func refreshCmd(gen int) tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{gen: gen}
	})
}
