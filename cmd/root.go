package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizpanel/internal/logging"
	"github.com/abhisek/quizpanel/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "quizpanel",
	Short: "Multiple-choice quiz on a 16x2 character display",
	Long: `quizpanel runs a three-button multiple-choice quiz on a two-row character LCD.

Without a subcommand it starts the terminal simulator: the LCD is drawn in the
terminal and the arrow keys and Enter act as the Up, Down and OK buttons.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("quiz", "", "Path to a quiz YAML file (overrides QUIZPANEL_QUIZ; default is the built-in quiz)")
	rootCmd.PersistentFlags().String("log", "", "Path to a JSON log file (overrides QUIZPANEL_LOG; default discards logs)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(glyphCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveQuizPath returns the quiz file using --quiz (highest priority),
// then QUIZPANEL_QUIZ. Empty means the built-in quiz.
func resolveQuizPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("quiz"); p != "" {
		return p
	}
	return os.Getenv("QUIZPANEL_QUIZ")
}

// resolveLogPath returns the log file using --log, then QUIZPANEL_LOG.
func resolveLogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		return p
	}
	return os.Getenv("QUIZPANEL_LOG")
}

// loadQuiz reads the quiz at path, or the built-in one when path is empty.
func loadQuiz(path string) (quiz.Config, error) {
	if path == "" {
		return quiz.Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return quiz.Config{}, fmt.Errorf("read quiz: %w", err)
	}
	cfg, err := quiz.Load(raw)
	if err != nil {
		return quiz.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// newLogger builds the logger selected by --log and --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, io.Closer, error) {
	level, _ := cmd.Flags().GetString("log-level")
	log, closer, err := logging.New(resolveLogPath(cmd), level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}
	return log, closer, nil
}

// closeLog closes the log file, warning on w if that fails.
func closeLog(w io.Writer, closer io.Closer) {
	if err := closer.Close(); err != nil {
		fmt.Fprintln(w, "warning: close log:", err)
	}
}
