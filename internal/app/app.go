package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ekuzmin/vokab/internal/review"
	"github.com/ekuzmin/vokab/internal/router"
	"github.com/ekuzmin/vokab/internal/screen"
	"github.com/ekuzmin/vokab/internal/screens/home"
	"github.com/ekuzmin/vokab/internal/screens/practice"
	"github.com/ekuzmin/vokab/internal/store"
	"github.com/ekuzmin/vokab/internal/ui/layout"
)

// SessionRequest asks the app to open straight into a running session
// instead of the home menu.
type SessionRequest struct {
	Kind   review.SessionType
	Mode   review.Mode
	Filter store.WordFilter
}

// Options carries the collaborators the TUI needs.
type Options struct {
	Manager   *review.Manager
	Words     store.WordRepo
	LearnerID string

	// Session, when set, skips the home menu.
	Session *SessionRequest
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	dueCount  int
	wordCount int
	width     int
	height    int
}

// newAppModel creates the root model with its initial screen.
func newAppModel(opts Options) AppModel {
	var initial screen.Screen
	if opts.Session != nil {
		initial = practice.New(opts.Manager, opts.LearnerID, opts.Session.Kind, opts.Session.Mode, opts.Session.Filter)
	} else {
		initial = home.New(opts.Manager, opts.Words, opts.LearnerID)
	}

	m := AppModel{router: router.New(initial)}

	// Header figures are loaded once at startup; failures degrade to 0.
	ctx := context.Background()
	if due, err := opts.Words.DueCount(ctx, time.Now()); err == nil {
		m.dueCount = due
	}
	if byLevel, err := opts.Words.CountByMastery(ctx); err == nil {
		for _, n := range byLevel {
			m.wordCount += n
		}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

	case router.PopScreenMsg:
		// Popping the last screen means the flow is over. This happens
		// when the CLI opened straight into a session.
		if m.router.Depth() <= 1 {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.dueCount, m.wordCount, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to the
// default navigation set.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if active == nil {
		return nil
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
