package quiz

// Phase is the state of a quiz session.
type Phase int

const (
	PhaseSelecting     Phase = iota // Choosing an option for the current question
	PhaseShowingResult              // Correctness shown, waiting for Confirm
	PhaseFinished                   // Summary shown, waiting for Confirm to restart
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseShowingResult:
		return "showing-result"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session is the mutable progress through one pass of the quiz.
type Session struct {
	// Question is the index of the current question.
	Question int

	// Selected is the highlighted option.
	Selected int

	// Score counts correct answers so far.
	Score int

	// Phase is the current state.
	Phase Phase

	// LastCorrect is the outcome of the most recent Confirm in PhaseSelecting.
	LastCorrect bool
}

// Event says what a button press did, so the caller knows what to draw.
type Event int

const (
	EventNone      Event = iota // Press ignored in this phase
	EventMoved                  // Highlight moved
	EventAnswered               // Answer evaluated, now showing result
	EventAdvanced               // Moved on to the next question
	EventFinished               // Last question done, summary due
	EventRestarted              // Back to the first question
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAnswered:
		return "answered"
	case EventAdvanced:
		return "advanced"
	case EventFinished:
		return "finished"
	case EventRestarted:
		return "restarted"
	default:
		return "none"
	}
}
