package quiz

import (
	"fmt"

	"github.com/abhisek/quizpanel/internal/buttons"
)

// Machine owns the single live Session and applies button presses to it.
// It is not safe for concurrent use; one control loop drives it.
type Machine struct {
	cfg Config
	s   Session
}

// NewMachine validates cfg and returns a machine at the first question.
func NewMachine(cfg Config) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("quiz config: %w", err)
	}
	m := &Machine{cfg: cfg}
	m.Reset()
	return m, nil
}

// Config returns the quiz definition.
func (m *Machine) Config() Config {
	return m.cfg
}

// Session returns a copy of the current session.
func (m *Machine) Session() Session {
	return m.s
}

// Reset enters the initial state.
func (m *Machine) Reset() {
	m.s = Session{Phase: PhaseSelecting}
}

// Handle applies one button press.
func (m *Machine) Handle(b buttons.Button) Event {
	switch b {
	case buttons.Up:
		return m.Up()
	case buttons.Down:
		return m.Down()
	case buttons.Confirm:
		return m.Confirm()
	}
	return EventNone
}

// Up moves the highlight to the previous option, wrapping to the last.
func (m *Machine) Up() Event {
	if m.s.Phase != PhaseSelecting {
		return EventNone
	}
	m.s.Selected = Wrap(m.s.Selected, -1, m.cfg.OptionCount())
	return EventMoved
}

// Down moves the highlight to the next option, wrapping to the first.
func (m *Machine) Down() Event {
	if m.s.Phase != PhaseSelecting {
		return EventNone
	}
	m.s.Selected = Wrap(m.s.Selected, 1, m.cfg.OptionCount())
	return EventMoved
}

// Confirm answers, advances or restarts depending on the phase.
func (m *Machine) Confirm() Event {
	switch m.s.Phase {
	case PhaseSelecting:
		m.s.LastCorrect = OptionID(m.s.Selected) == m.cfg.Answer(m.s.Question)
		if m.s.LastCorrect {
			m.s.Score++
		}
		m.s.Phase = PhaseShowingResult
		return EventAnswered

	case PhaseShowingResult:
		m.s.Question++
		if m.s.Question >= m.cfg.QuestionCount() {
			m.s.Phase = PhaseFinished
			return EventFinished
		}
		m.s.Selected = 0
		m.s.Phase = PhaseSelecting
		return EventAdvanced

	case PhaseFinished:
		m.Reset()
		return EventRestarted
	}
	return EventNone
}

// Percentage returns the current score as a percentage of all questions.
func (m *Machine) Percentage() int {
	return Percentage(m.s.Score, m.cfg.QuestionCount())
}

// Wrap moves selected by delta inside [0, n).
func Wrap(selected, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((selected+delta)%n + n) % n
}
