package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizpanel/internal/buttons"
	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/panel"
	"github.com/abhisek/quizpanel/internal/quiz"
)

var scriptCmd = &cobra.Command{
	Use:   "script <presses>",
	Short: "Replay button presses headlessly and print every LCD frame",
	Long: `Replay a sequence of button presses (up, down, confirm; separated by
spaces or commas) against the quiz without a terminal UI. Each distinct LCD
frame is printed as it settles. Delays are skipped unless --timing real is set.`,
	Example: `  quizpanel script "down confirm confirm"
  quizpanel script u,d,ok --timing real`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := buttons.ParseScript(strings.Join(args, " "))
		if err != nil {
			return err
		}

		mode, _ := cmd.Flags().GetString("timing")
		timing, sleeper, err := scriptTiming(mode)
		if err != nil {
			return err
		}

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
		printer := &framePrinter{buf: buf, out: cmd.OutOrStdout(), next: sleeper}
		ctrl := panel.New(machine, buf, input, panel.Options{
			Timing:  timing,
			Sleeper: printer,
			Logger:  log,
		})

		err = ctrl.Run(cmd.Context())
		printer.flush()
		if err != nil && !errors.Is(err, panel.ErrInputExhausted) {
			return err
		}

		st := ctrl.Status()
		fmt.Fprintf(cmd.OutOrStdout(), "phase=%s question=%d/%d score=%d frames=%d\n",
			st.Phase, st.Question+1, st.Questions, st.Score, printer.frames)
		return nil
	},
}

func init() {
	scriptCmd.Flags().String("timing", "fast", "Pacing of the replay: fast or real")
}

// scriptTiming maps the --timing flag to controller pacing.
func scriptTiming(mode string) (panel.Timing, panel.Sleeper, error) {
	switch mode {
	case "fast":
		return panel.FastTiming(), panel.SleeperFunc(func(ctx context.Context, _ time.Duration) error {
			return ctx.Err()
		}), nil
	case "real":
		return panel.DefaultTiming(), panel.RealSleeper, nil
	default:
		return panel.Timing{}, nil, fmt.Errorf("unknown timing %q (want fast or real)", mode)
	}
}

// framePrinter prints the display whenever the controller pauses on a frame
// that differs from the last one printed.
type framePrinter struct {
	buf     *lcd.Buffer
	out     io.Writer
	next    panel.Sleeper
	last    string
	version uint64
	frames  int
}

func (p *framePrinter) Sleep(ctx context.Context, d time.Duration) error {
	p.flush()
	return p.next.Sleep(ctx, d)
}

func (p *framePrinter) flush() {
	v := p.buf.Version()
	if v == p.version {
		return
	}
	p.version = v
	frame := p.buf.Snapshot()
	text := frame.Text()
	if text == p.last {
		return
	}
	p.last = text
	p.frames++
	fmt.Fprint(p.out, boxFrame(frame))
}

// boxFrame draws the frame inside an ASCII border.
func boxFrame(f lcd.Frame) string {
	edge := "+" + strings.Repeat("-", f.Size.Cols) + "+\n"
	var sb strings.Builder
	sb.WriteString(edge)
	for _, line := range f.Lines(func(lcd.GlyphID) rune { return '>' }) {
		sb.WriteString("|" + line + "|\n")
	}
	sb.WriteString(edge)
	return sb.String()
}
