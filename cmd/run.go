package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizpanel/internal/app"
	"github.com/abhisek/quizpanel/internal/buttons"
	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/panel"
	"github.com/abhisek/quizpanel/internal/quiz"
)

// runApp loads the quiz, builds the device, and launches the simulator.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadQuiz(resolveQuizPath(cmd))
	if err != nil {
		return err
	}
	machine, err := quiz.NewMachine(cfg)
	if err != nil {
		return err
	}

	log, closer, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog(cmd.ErrOrStderr(), closer)

	buf := lcd.NewBuffer(lcd.Size{Cols: cfg.Display.Cols, Rows: cfg.Display.Rows})
	keypad := buttons.NewLatch(buttons.DefaultHold)
	ctrl := panel.New(machine, buf, keypad, panel.Options{
		Timing: panel.DefaultTiming(),
		Logger: log,
	})

	return app.Run(ctx, app.Options{
		Buffer:     buf,
		Keypad:     keypad,
		Controller: ctrl,
	})
}
