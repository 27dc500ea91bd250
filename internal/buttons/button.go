package buttons

import (
	"fmt"
	"strings"
)

// Button is a logical momentary push button.
type Button int

const (
	Up Button = iota
	Down
	Confirm
)

// Count is the number of logical buttons.
const Count = 3

// All returns every button in polling order.
func All() []Button {
	return []Button{Up, Down, Confirm}
}

func (b Button) String() string {
	switch b {
	case Up:
		return "up"
	case Down:
		return "down"
	case Confirm:
		return "confirm"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseButton accepts the String form plus the short aliases u, d, ok and c.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "confirm", "ok", "c":
		return Confirm, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// Source reports whether a button is currently held.
type Source interface {
	Pressed(b Button) bool
}

// Sampler is implemented by sources that latch their state once per poll
// cycle. The control loop calls Sample before reading any button.
type Sampler interface {
	Sample()
}

// Finite is implemented by sources that can run out of input.
type Finite interface {
	Done() bool
}
