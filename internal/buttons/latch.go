package buttons

import (
	"sync"
	"time"
)

// DefaultHold is how long a key press keeps a button down. Terminals report
// key presses but not releases, so each press is treated as a short tap.
const DefaultHold = 120 * time.Millisecond

// Latch is a Source fed by discrete key events from another goroutine.
type Latch struct {
	mu    sync.Mutex
	hold  time.Duration
	now   func() time.Time
	until [Count]time.Time
}

var _ Source = (*Latch)(nil)

// NewLatch creates a Latch with the given hold time.
func NewLatch(hold time.Duration) *Latch {
	return &Latch{hold: hold, now: time.Now}
}

// Press holds b down for the latch's hold time.
func (l *Latch) Press(b Button) {
	if b < 0 || int(b) >= Count {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.until[b] = l.now().Add(l.hold)
}

// Release lets go of b immediately.
func (l *Latch) Release(b Button) {
	if b < 0 || int(b) >= Count {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.until[b] = time.Time{}
}

func (l *Latch) Pressed(b Button) bool {
	if b < 0 || int(b) >= Count {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now().Before(l.until[b])
}
