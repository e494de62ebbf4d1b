package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ekuzmin/vokab/internal/review"
	"github.com/ekuzmin/vokab/internal/router"
	"github.com/ekuzmin/vokab/internal/screen"
	"github.com/ekuzmin/vokab/internal/ui/layout"
	"github.com/ekuzmin/vokab/internal/ui/theme"
)

// SummaryScreen displays the final statistics of a finished session.
type SummaryScreen struct {
	stats review.Stats
	kind  review.SessionType
	mode  review.Mode
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(stats review.Stats, kind review.SessionType, mode review.Mode) *SummaryScreen {
	return &SummaryScreen{stats: stats, kind: kind, mode: mode}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.stats

	var b strings.Builder
	b.WriteString("\n\n")

	headline := "Session complete!"
	if st.Completed < st.TotalItems {
		headline = "Session ended early"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sessionLabel(s.kind, s.mode)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d/%d        Correct: %d        Accuracy: %.0f%%",
		st.Completed, st.TotalItems, st.Correct, st.Accuracy()*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	mins := st.TimeSpentSec / 60
	secs := st.TimeSpentSec % 60
	detail := fmt.Sprintf("Average rating: %.1f        Time answering: %d:%02d",
		st.AverageRating(), mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")

	if st.Completed > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(verdict(st.Accuracy())).
			Render(encouragement(st.Accuracy())))
	}

	return b.String()
}

func sessionLabel(kind review.SessionType, mode review.Mode) string {
	k := "Daily review"
	if kind == review.TypeTraining {
		k = "Training"
	}
	switch mode {
	case review.ModeTranslationInput:
		return k + " · typed, both directions"
	case review.ModeReverseInput:
		return k + " · typed, reverse"
	default:
		return k + " · flashcards"
	}
}

func verdict(accuracy float64) color.Color {
	switch {
	case accuracy >= 0.9:
		return theme.Success
	case accuracy >= 0.6:
		return theme.Accent
	default:
		return theme.Error
	}
}

func encouragement(accuracy float64) string {
	switch {
	case accuracy >= 0.9:
		return "Excellent recall. Keep it up!"
	case accuracy >= 0.6:
		return "Solid work. The tricky ones will come back sooner."
	default:
		return "Tough batch. They will show up again tomorrow."
	}
}
