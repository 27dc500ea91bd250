package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQuiz(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []OptionID{OptionB, OptionA, OptionC}, cfg.Answers)
	assert.Equal(t, 3, cfg.QuestionCount())
	assert.Equal(t, 3, cfg.OptionCount())
	assert.Equal(t, "Option B", cfg.Label(OptionB))
	assert.Equal(t, Display{Cols: 16, Rows: 2}, cfg.Display)
	assert.True(t, cfg.Toggles.ShowPercentage)
	assert.Equal(t, "LCD QUIZ", cfg.Messages.Title)
}

func TestLoadPartialDocumentKeepsBaseline(t *testing.T) {
	cfg, err := Load([]byte("answers: [a, 1]\noptions: [Yes, No]\nmessages:\n  title: TRIVIA\n"))
	require.NoError(t, err)
	assert.Equal(t, []OptionID{OptionA, OptionB}, cfg.Answers)
	assert.Equal(t, []string{"Yes", "No"}, cfg.Options)
	assert.Equal(t, "TRIVIA", cfg.Messages.Title)
	assert.Equal(t, "CORRECT!", cfg.Messages.Correct)
	assert.True(t, cfg.Toggles.ShowFeedback)
}

func TestLoadToggleOff(t *testing.T) {
	cfg, err := Load([]byte("answers: [A]\ntoggles:\n  show_percentage: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Toggles.ShowPercentage)
	assert.True(t, cfg.Toggles.ShowQuestionNumber)
}

func TestLoadSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"missing answers", "options: [A, B]\n"},
		{"empty answers", "answers: []\n"},
		{"bad letter", "answers: [AB]\n"},
		{"unknown key", "answers: [A]\ncolour: red\n"},
		{"bad toggle", "answers: [A]\ntoggles:\n  show_feedback: maybe\n"},
		{"oversized display", "answers: [A]\ndisplay:\n  rows: 9\n"},
		{"misspelled message", "answers: [A]\nmessages:\n  titel: QUIZ\n"},
		{"non-string message", "answers: [A]\nmessages:\n  title: [QUIZ]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
			var se *SchemaError
			assert.True(t, errors.As(err, &se), "expected SchemaError, got %v", err)
		})
	}
}

func TestLoadAnswerOutOfRange(t *testing.T) {
	_, err := Load([]byte("answers: [A, D]\n"))
	require.Error(t, err)
	var re *AnswerRangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 1, re.Question)
	assert.Equal(t, OptionID(3), re.Answer)
	assert.Contains(t, err.Error(), "question 2")
}

func TestLoadRejectsBadFormats(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
	}{
		{"question format missing total", "answers: [A]\nmessages:\n  question_format: \"Pregunta %d\"\n", "question_format"},
		{"question format without verbs", "answers: [A]\nmessages:\n  question_format: \"Pregunta\"\n", "question_format"},
		{"question format extra verb", "answers: [A]\nmessages:\n  question_format: \"%d/%d/%d\"\n", "question_format"},
		{"percent format without verb", "answers: [A]\nmessages:\n  percent_format: \"Aciertos\"\n", "percent_format"},
		{"percent format wrong verb", "answers: [A]\nmessages:\n  percent_format: \"%s points\"\n", "percent_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
			var fe *MessageFormatError
			require.True(t, errors.As(err, &fe), "expected MessageFormatError, got %v", err)
			assert.Equal(t, tt.key, fe.Key)
			assert.Contains(t, fe.Rendered, "%!")
		})
	}
}

func TestLoadAcceptsCustomFormats(t *testing.T) {
	cfg, err := Load([]byte("answers: [A]\nmessages:\n  question_format: \"Pregunta %d de %d\"\n  percent_format: \"Aciertos %d%%\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Pregunta %d de %d", cfg.Messages.QuestionFormat)
	assert.NoError(t, Default().Validate())
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load([]byte("answers: [A\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse quiz")
}

func TestValidateDisplay(t *testing.T) {
	cfg := baseline()
	cfg.Answers = []OptionID{OptionA}
	cfg.Display = Display{Cols: 0, Rows: 2}
	assert.ErrorIs(t, cfg.Validate(), ErrDisplayTooSmall)
}

func TestParseOptionID(t *testing.T) {
	id, err := ParseOptionID("c")
	require.NoError(t, err)
	assert.Equal(t, OptionC, id)

	id, err = ParseOptionID("4")
	require.NoError(t, err)
	assert.Equal(t, OptionID(4), id)

	_, err = ParseOptionID("-1")
	assert.Error(t, err)
	_, err = ParseOptionID("??")
	assert.Error(t, err)

	assert.Equal(t, "B", OptionB.Letter())
	assert.Equal(t, "30", OptionID(30).Letter())
}
