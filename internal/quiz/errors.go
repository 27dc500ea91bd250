package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestions means the answer key is empty.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrNoOptions means the option list is empty.
	ErrNoOptions = errors.New("quiz has no options")

	// ErrDisplayTooSmall means the target display has no usable cells.
	ErrDisplayTooSmall = errors.New("display must have at least one row and one column")
)

// AnswerRangeError reports an answer key entry that names a missing option.
type AnswerRangeError struct {
	Question int
	Answer   OptionID
	Options  int
}

func (e *AnswerRangeError) Error() string {
	return fmt.Sprintf("question %d: answer %s out of range (%d options)", e.Question+1, e.Answer, e.Options)
}

// MessageFormatError reports a format message whose verbs do not match the
// values the device fills in.
type MessageFormatError struct {
	Key      string
	Rendered string
}

func (e *MessageFormatError) Error() string {
	return fmt.Sprintf("message %s: bad format, renders as %q", e.Key, e.Rendered)
}

// SchemaError wraps a quiz document that does not match the document schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid quiz document: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
