package quiz

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Toggles switch optional screens on and off.
type Toggles struct {
	ShowQuestionNumber bool `yaml:"show_question_number"`
	ShowCorrectAnswer  bool `yaml:"show_correct_answer"`
	ShowFeedback       bool `yaml:"show_feedback"`
	ShowPercentage     bool `yaml:"show_percentage"`
}

// Messages holds every static string the device shows.
type Messages struct {
	Title          string `yaml:"title"`
	Loading        string `yaml:"loading"`
	ChooseOption   string `yaml:"choose_option"`
	Instruction    string `yaml:"instruction"`
	QuestionFormat string `yaml:"question_format"`
	Correct        string `yaml:"correct"`
	Incorrect      string `yaml:"incorrect"`
	WasPrefix      string `yaml:"was_prefix"`
	Continue1      string `yaml:"continue1"`
	Continue2      string `yaml:"continue2"`
	Final1         string `yaml:"final1"`
	Final2         string `yaml:"final2"`
	PercentFormat  string `yaml:"percent_format"`
	TierHigh       string `yaml:"tier_high"`
	TierMedium     string `yaml:"tier_medium"`
	TierLow        string `yaml:"tier_low"`
	PressToEnd     string `yaml:"press_to_end"`
}

// Display is the geometry of the target character display.
type Display struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// Config is an immutable quiz definition. Build it with Load or Default and
// do not mutate it afterwards.
type Config struct {
	Answers  []OptionID `yaml:"answers"`
	Options  []string   `yaml:"options"`
	Toggles  Toggles    `yaml:"toggles"`
	Messages Messages   `yaml:"messages"`
	Display  Display    `yaml:"display"`
}

// baseline is what a document starts from; keys it omits keep these values.
func baseline() Config {
	return Config{
		Options: []string{"Option A", "Option B", "Option C"},
		Toggles: Toggles{
			ShowQuestionNumber: true,
			ShowCorrectAnswer:  true,
			ShowFeedback:       true,
			ShowPercentage:     true,
		},
		Messages: Messages{
			Title:          "LCD QUIZ",
			Loading:        "Loading",
			ChooseOption:   "Pick an option",
			Instruction:    "Up/Down then OK",
			QuestionFormat: "Question %d/%d",
			Correct:        "CORRECT!",
			Incorrect:      "INCORRECT",
			WasPrefix:      "It was: ",
			Continue1:      "Press OK",
			Continue2:      "to continue",
			Final1:         "QUIZ FINISHED",
			PercentFormat:  "Score: %d%%",
			TierHigh:       "EXCELLENT!",
			TierMedium:     "WELL DONE",
			TierLow:        "ALMOST THERE!",
			PressToEnd:     "OK to restart",
		},
		Display: Display{Cols: 16, Rows: 2},
	}
}

// Default returns the compiled-in quiz.
func Default() Config {
	cfg, err := Load(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded quiz: %v", err))
	}
	return cfg
}

// DefaultDocument returns the raw compiled-in quiz document.
func DefaultDocument() []byte {
	return append([]byte(nil), defaultDocument...)
}

// Load parses a YAML quiz document, checks it against the document schema
// and validates the result.
func Load(raw []byte) (Config, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("parse quiz: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return Config{}, err
	}

	cfg := baseline()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode quiz: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the structural invariants the state machine relies on.
func (c Config) Validate() error {
	if len(c.Answers) == 0 {
		return ErrNoQuestions
	}
	if len(c.Options) == 0 {
		return ErrNoOptions
	}
	if c.Display.Cols < 1 || c.Display.Rows < 1 {
		return ErrDisplayTooSmall
	}
	for i, a := range c.Answers {
		if a < 0 || int(a) >= len(c.Options) {
			return &AnswerRangeError{Question: i, Answer: a, Options: len(c.Options)}
		}
	}
	if err := checkFormat("question_format", c.Messages.QuestionFormat, 1, 1); err != nil {
		return err
	}
	return checkFormat("percent_format", c.Messages.PercentFormat, 100)
}

// checkFormat renders format with sample values and rejects any fmt error
// marker such as %!(EXTRA ...) or %!d(MISSING).
func checkFormat(key, format string, args ...any) error {
	out := fmt.Sprintf(format, args...)
	if strings.Contains(out, "%!") {
		return &MessageFormatError{Key: key, Rendered: out}
	}
	return nil
}

// QuestionCount returns the number of questions.
func (c Config) QuestionCount() int {
	return len(c.Answers)
}

// OptionCount returns the number of options per question.
func (c Config) OptionCount() int {
	return len(c.Options)
}

// Label returns the display text for an option.
func (c Config) Label(o OptionID) string {
	if o < 0 || int(o) >= len(c.Options) {
		return o.Letter()
	}
	return c.Options[o]
}

// Answer returns the correct option for question q.
func (c Config) Answer(q int) OptionID {
	return c.Answers[q]
}

// FeedbackMessage returns the message for the tier percent falls into.
func (c Config) FeedbackMessage(percent int) string {
	switch TierFor(percent) {
	case TierHigh:
		return c.Messages.TierHigh
	case TierMedium:
		return c.Messages.TierMedium
	default:
		return c.Messages.TierLow
	}
}
