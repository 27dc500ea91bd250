package buttons

import (
	"fmt"
	"strings"
)

// Script replays a fixed press sequence, one press per poll cycle.
// A press the current phase does not listen for is still consumed, just as
// a real button pressed at the wrong time is ignored.
type Script struct {
	queue     []Button
	current   Button
	held      bool
	exhausted bool
}

var (
	_ Source  = (*Script)(nil)
	_ Sampler = (*Script)(nil)
	_ Finite  = (*Script)(nil)
)

// NewScript creates a Script from presses.
func NewScript(presses ...Button) *Script {
	return &Script{queue: append([]Button(nil), presses...)}
}

// ParseScript reads a whitespace or comma separated press list such as
// "down confirm ok up".
func ParseScript(s string) (*Script, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	presses := make([]Button, 0, len(fields))
	for i, f := range fields {
		b, err := ParseButton(f)
		if err != nil {
			return nil, fmt.Errorf("press %d: %w", i+1, err)
		}
		presses = append(presses, b)
	}
	return NewScript(presses...), nil
}

// Sample advances to the next press. Once the queue is empty the script
// reports Done.
func (s *Script) Sample() {
	if len(s.queue) == 0 {
		s.held = false
		s.exhausted = true
		return
	}
	s.current, s.queue = s.queue[0], s.queue[1:]
	s.held = true
}

func (s *Script) Pressed(b Button) bool {
	return s.held && s.current == b
}

// Remaining returns the number of presses not yet sampled.
func (s *Script) Remaining() int {
	return len(s.queue)
}

func (s *Script) Done() bool {
	return s.exhausted
}
