package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ekuzmin/vokab/internal/review"
	"github.com/ekuzmin/vokab/internal/router"
	"github.com/ekuzmin/vokab/internal/screen"
	"github.com/ekuzmin/vokab/internal/screens/practice"
	"github.com/ekuzmin/vokab/internal/store"
	"github.com/ekuzmin/vokab/internal/ui/components"
	"github.com/ekuzmin/vokab/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	totalWords int
	dueCount   int
	retired    int
	byMastery  map[int]int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Word counts are loaded up front so the
// menu can reflect whether a daily review is worth starting; failed
// count queries degrade to zeros.
func New(mgr *review.Manager, words store.WordRepo, learnerID string) *HomeScreen {
	ctx := context.Background()

	byMastery, err := words.CountByMastery(ctx)
	if err != nil {
		byMastery = map[int]int{}
	}
	total := 0
	for _, n := range byMastery {
		total += n
	}
	due, err := words.DueCount(ctx, time.Now())
	if err != nil {
		due = 0
	}

	startPractice := func(kind review.SessionType, mode review.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(mgr, learnerID, kind, mode, store.WordFilter{MaxMastery: -1}),
				}
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:    "DAILY REVIEW",
			Action:   startPractice(review.TypeDaily, review.ModeRecognition),
			Disabled: due == 0,
		},
		{
			Label:    "TYPED REVIEW",
			Action:   startPractice(review.TypeDaily, review.ModeTranslationInput),
			Disabled: due == 0,
		},
		{
			Label:    "TRAINING",
			Action:   startPractice(review.TypeTraining, review.ModeRecognition),
			Disabled: total == 0,
		},
		{
			Label:    "TYPED TRAINING",
			Action:   startPractice(review.TypeTraining, review.ModeTranslationInput),
			Disabled: total == 0,
		},
		{
			Label:  "EXIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		totalWords: total,
		dueCount:   due,
		retired:    byMastery[5],
		byMastery:  byMastery,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("V O K A B"))
	sections = append(sections, theme.Subtitle.Width(width).Render("spaced-repetition vocabulary trainer"))

	sections = append(sections, h.renderStats(width))
	sections = append(sections, h.renderMasteryRow(width))

	menu := h.menu.View()
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStats(width int) string {
	dueStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if h.dueCount == 0 {
		dueStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	line := lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%d words", h.totalWords)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ·   ") +
		dueStyle.Render(fmt.Sprintf("%d due", h.dueCount)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ·   ") +
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%d retired", h.retired))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// renderMasteryRow shows the word count at each mastery level as a
// colored strip, lowest level first.
func (h *HomeScreen) renderMasteryRow(width int) string {
	if h.totalWords == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Import a word list to get started: vokab import <file>"))
	}

	var parts []string
	for level := 0; level <= 5; level++ {
		part := lipgloss.NewStyle().
			Foreground(theme.MasteryColor(level)).
			Render(fmt.Sprintf("L%d:%d", level, h.byMastery[level]))
		parts = append(parts, part)
	}
	row := strings.Join(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}
