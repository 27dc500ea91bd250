// Package panel runs the quiz control loop: poll the buttons, advance the
// state machine, redraw the display, and pause where the device pauses.
package panel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizpanel/internal/buttons"
	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/quiz"
	"github.com/abhisek/quizpanel/internal/view"
)

// ErrInputExhausted is returned by Run when a finite input source has no
// presses left.
var ErrInputExhausted = errors.New("input exhausted")

// Options configures a Controller.
type Options struct {
	// Timing sets the pauses. The zero value disables them.
	Timing Timing

	// Sleeper defaults to RealSleeper.
	Sleeper Sleeper

	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// Status is a point-in-time view of the session for observers.
type Status struct {
	RunID     string
	Phase     quiz.Phase
	Question  int
	Questions int
	Selected  int
	Score     int
	LastEvent quiz.Event
	Booted    bool

	// LastCorrect is the outcome of the latest answer.
	LastCorrect bool
}

// Controller owns the state machine and drives one display from one input.
type Controller struct {
	machine *quiz.Machine
	view    *view.Composer
	input   buttons.Source
	timing  Timing
	sleeper Sleeper
	log     *slog.Logger
	runID   string

	mu     sync.Mutex
	status Status
}

// New creates a Controller. The machine must not be used elsewhere.
func New(m *quiz.Machine, disp lcd.Display, input buttons.Source, opts Options) *Controller {
	if opts.Sleeper == nil {
		opts.Sleeper = RealSleeper
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	runID := uuid.NewString()
	c := &Controller{
		machine: m,
		view:    view.New(m.Config(), disp),
		input:   input,
		timing:  opts.Timing,
		sleeper: opts.Sleeper,
		log:     opts.Logger.With("run", runID),
		runID:   runID,
	}
	c.publish(quiz.EventNone)
	return c
}

// Config returns the quiz being run.
func (c *Controller) Config() quiz.Config {
	return c.machine.Config()
}

// Status returns the latest session snapshot. Safe to call from any goroutine.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Run boots the display and polls until ctx is done or the input runs out.
// Cancellation is a clean stop and returns nil.
func (c *Controller) Run(ctx context.Context) error {
	err := c.Start(ctx)
	for err == nil {
		err = c.Step(ctx)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.log.Info("control loop stopped")
		return nil
	}
	return err
}

// Start sets up the display, plays the welcome sequence and shows the first
// question.
func (c *Controller) Start(ctx context.Context) error {
	c.log.Info("booting",
		"questions", c.machine.Config().QuestionCount(),
		"options", c.machine.Config().OptionCount())

	c.view.Setup()
	if err := c.welcome(ctx); err != nil {
		return err
	}
	c.view.Instructions()
	if err := c.pause(ctx, c.timing.InstructionHold); err != nil {
		return err
	}

	c.machine.Reset()
	c.mu.Lock()
	c.status.Booted = true
	c.mu.Unlock()
	c.publish(quiz.EventRestarted)
	return c.showQuestion(ctx)
}

// Step runs one poll cycle.
func (c *Controller) Step(ctx context.Context) error {
	if s, ok := c.input.(buttons.Sampler); ok {
		s.Sample()
	}
	if f, ok := c.input.(buttons.Finite); ok && f.Done() {
		return ErrInputExhausted
	}

	for _, b := range c.listening() {
		if !c.input.Pressed(b) {
			continue
		}
		if err := c.pause(ctx, c.timing.Debounce); err != nil {
			return err
		}
		if err := c.apply(ctx, b); err != nil {
			return err
		}
	}
	return c.pause(ctx, c.timing.Poll)
}

// listening returns the buttons the current phase reacts to, in poll order.
func (c *Controller) listening() []buttons.Button {
	if c.machine.Session().Phase == quiz.PhaseSelecting {
		return buttons.All()
	}
	return []buttons.Button{buttons.Confirm}
}

func (c *Controller) apply(ctx context.Context, b buttons.Button) error {
	ev := c.machine.Handle(b)
	if ev == quiz.EventNone {
		return nil
	}
	s := c.machine.Session()
	c.log.Info("transition",
		"button", b.String(),
		"event", ev.String(),
		"phase", s.Phase.String(),
		"question", s.Question,
		"selected", s.Selected,
		"score", s.Score)
	c.publish(ev)
	return c.render(ctx, ev)
}

func (c *Controller) render(ctx context.Context, ev quiz.Event) error {
	s := c.machine.Session()
	cfg := c.machine.Config()

	switch ev {
	case quiz.EventMoved:
		c.view.Options(s.Selected)

	case quiz.EventAnswered:
		c.view.Result(s.LastCorrect, cfg.Answer(s.Question))
		if err := c.pause(ctx, c.timing.ResultHold); err != nil {
			return err
		}
		c.view.Continue()

	case quiz.EventAdvanced:
		return c.showQuestion(ctx)

	case quiz.EventFinished:
		return c.summary(ctx)

	case quiz.EventRestarted:
		if err := c.welcome(ctx); err != nil {
			return err
		}
		return c.showQuestion(ctx)
	}
	return nil
}

func (c *Controller) welcome(ctx context.Context) error {
	c.view.Title()
	if err := c.pause(ctx, c.timing.TitleHold); err != nil {
		return err
	}
	c.view.Welcome(0)
	for dots := 1; dots <= view.MaxLoadingDots; dots++ {
		if err := c.pause(ctx, c.timing.LoadingStep); err != nil {
			return err
		}
		c.view.Welcome(dots)
	}
	return c.pause(ctx, c.timing.LoadingHold)
}

func (c *Controller) showQuestion(ctx context.Context) error {
	s := c.machine.Session()
	if c.machine.Config().Toggles.ShowQuestionNumber {
		c.view.Banner(s.Question)
		if err := c.pause(ctx, c.timing.BannerHold); err != nil {
			return err
		}
	}
	c.view.Options(s.Selected)
	return nil
}

func (c *Controller) summary(ctx context.Context) error {
	toggles := c.machine.Config().Toggles
	percent := c.machine.Percentage()
	c.log.Info("quiz finished",
		"score", c.machine.Session().Score,
		"percent", percent,
		"tier", quiz.TierFor(percent).String())

	c.view.Final()
	if err := c.pause(ctx, c.timing.FinalHold); err != nil {
		return err
	}
	c.view.Percent(percent)
	if toggles.ShowPercentage {
		if err := c.pause(ctx, c.timing.PercentHold); err != nil {
			return err
		}
	}
	if toggles.ShowFeedback {
		c.view.Feedback(percent)
		if err := c.pause(ctx, c.timing.FeedbackHold); err != nil {
			return err
		}
	}
	c.view.PressToEnd()
	return nil
}

func (c *Controller) pause(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.sleeper.Sleep(ctx, d)
}

func (c *Controller) publish(ev quiz.Event) {
	s := c.machine.Session()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.RunID = c.runID
	c.status.Phase = s.Phase
	c.status.Question = s.Question
	c.status.Questions = c.machine.Config().QuestionCount()
	c.status.Selected = s.Selected
	c.status.Score = s.Score
	c.status.LastEvent = ev
	c.status.LastCorrect = s.LastCorrect
}
