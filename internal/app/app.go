package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/quizpanel/internal/buttons"
	"github.com/abhisek/quizpanel/internal/lcd"
	"github.com/abhisek/quizpanel/internal/panel"
	"github.com/abhisek/quizpanel/internal/router"
	"github.com/abhisek/quizpanel/internal/screen"
	"github.com/abhisek/quizpanel/internal/screens/device"
	"github.com/abhisek/quizpanel/internal/screens/glyphs"
	"github.com/abhisek/quizpanel/internal/screens/overview"
	"github.com/abhisek/quizpanel/internal/ui/layout"
)

// Options holds the simulator's collaborators.
type Options struct {
	Buffer     *lcd.Buffer
	Keypad     *buttons.Latch
	Controller *panel.Controller
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	status     device.StatusSource
	inspectors []device.Inspector
	width      int
	height     int
}

// newAppModel creates a new AppModel with the device screen.
func newAppModel(opts Options) AppModel {
	inspectors := []device.Inspector{{
		Key:         "g",
		Description: "Glyphs",
		New:         func() screen.Screen { return glyphs.New(opts.Buffer) },
	}}
	var status device.StatusSource
	if opts.Controller != nil {
		status = opts.Controller
		cfg := opts.Controller.Config()
		inspectors = append(inspectors, device.Inspector{
			Key:         "o",
			Description: "Overview",
			New:         func() screen.Screen { return overview.New(cfg, opts.Controller) },
		})
	}
	return AppModel{
		router:     router.New(device.New(opts.Buffer, opts.Keypad, status, inspectors...)),
		status:     status,
		inspectors: inspectors,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
		if cmd := m.switchInspector(msg.String()); cmd != nil {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// switchInspector swaps one open inspector for another without going back
// to the device first.
func (m AppModel) switchInspector(key string) tea.Cmd {
	if m.router.Depth() < 2 {
		return nil
	}
	for _, in := range m.inspectors {
		if in.Key != key || in.Description == m.router.Active().Title() {
			continue
		}
		s := in.New()
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
	}
	return nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) headerStatus() string {
	if m.status == nil {
		return ""
	}
	st := m.status.Status()
	if !st.Booted {
		return ""
	}
	q := st.Question + 1
	if q > st.Questions {
		q = st.Questions
	}
	return fmt.Sprintf("Q %d/%d  ★ %d  ", q, st.Questions, st.Score)
}

// Run starts the Bubble Tea program and the control loop. Quitting the
// program stops the loop; a loop failure quits the program.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	if opts.Controller != nil {
		g.Go(func() error {
			err := opts.Controller.Run(gctx)
			if err != nil {
				p.Quit()
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
