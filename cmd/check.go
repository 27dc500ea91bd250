package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizpanel/internal/quiz"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a quiz definition and print its answer key",
	Long: `Validate a quiz YAML file against the quiz schema and the display
constraints. Without an argument the --quiz file (or QUIZPANEL_QUIZ) is used,
falling back to the built-in quiz.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveQuizPath(cmd)
		if len(args) == 1 {
			path = args[0]
		}
		cfg, err := loadQuiz(path)
		if err != nil {
			return err
		}
		if _, err := quiz.NewMachine(cfg); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		name := path
		if name == "" {
			name = "built-in quiz"
		}
		fmt.Fprintf(out, "%s: ok\n", name)
		fmt.Fprintf(out, "  Display:   %dx%d\n", cfg.Display.Cols, cfg.Display.Rows)
		fmt.Fprintf(out, "  Questions: %d\n", cfg.QuestionCount())
		fmt.Fprintf(out, "  Options:   %d\n\n", cfg.OptionCount())

		fmt.Fprintf(out, "%-6s %-6s %s\n", "Q", "ANSWER", "LABEL")
		for i, a := range cfg.Answers {
			fmt.Fprintf(out, "%-6d %-6s %s\n", i+1, a, cfg.Label(a))
		}
		return nil
	},
}
