package panel

import (
	"context"
	"time"
)

// Timing holds the fixed pauses of the control loop. A zero duration skips
// the pause.
type Timing struct {
	Poll     time.Duration // between input polls
	Debounce time.Duration // after a detected press, before acting on it

	TitleHold       time.Duration // title alone before the loading dots
	LoadingStep     time.Duration // between loading dots
	LoadingHold     time.Duration // after the last dot
	InstructionHold time.Duration
	BannerHold      time.Duration // question number banner
	ResultHold      time.Duration // correct/incorrect before the continue prompt
	FinalHold       time.Duration
	PercentHold     time.Duration
	FeedbackHold    time.Duration
}

// DefaultTiming matches the pacing of the hardware build.
func DefaultTiming() Timing {
	return Timing{
		Poll:            10 * time.Millisecond,
		Debounce:        200 * time.Millisecond,
		TitleHold:       time.Second,
		LoadingStep:     500 * time.Millisecond,
		LoadingHold:     time.Second,
		InstructionHold: 2 * time.Second,
		BannerHold:      1500 * time.Millisecond,
		ResultHold:      3 * time.Second,
		FinalHold:       2 * time.Second,
		PercentHold:     1500 * time.Millisecond,
		FeedbackHold:    3 * time.Second,
	}
}

// FastTiming disables every pause. Used for scripted runs.
func FastTiming() Timing {
	return Timing{}
}

// Sleeper blocks for a fixed duration. The controller calls it at every
// pacing point, zero-length ones included, so a Sleeper also marks where a
// screen is complete.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// RealSleeper waits on the wall clock and returns early with ctx.Err() when
// ctx is done.
var RealSleeper Sleeper = SleeperFunc(func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
})
