package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ekuzmin/vokab/internal/evaluate"
	"github.com/ekuzmin/vokab/internal/review"
	"github.com/ekuzmin/vokab/internal/ui/components"
	"github.com/ekuzmin/vokab/internal/ui/theme"
)

// renderQuestion renders the active item.
func (p *PracticeScreen) renderQuestion(width int) string {
	if p.item == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	b.WriteString(p.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	promptLabel := "Translate:"
	if p.item.Direction == review.DirectionReverse {
		promptLabel = "What word means:"
	}
	if !p.typedMode() {
		promptLabel = "Do you remember this word?"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(promptLabel))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(p.item.Prompt))
	b.WriteString("\n\n")

	if p.typedMode() {
		b.WriteString(p.renderTypedArea(width))
	} else {
		b.WriteString(p.renderRecognitionArea(width))
	}

	if p.hintNotice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(p.hintNotice))
	}

	return b.String()
}

// renderInfoLine shows queue position, round and session progress.
func (p *PracticeScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", p.Title(), modeLabel(p.mode)))

	pos := fmt.Sprintf("Item %d/%d", p.item.Index+1, p.item.Total)
	if p.mode == review.ModeTranslationInput {
		pos += fmt.Sprintf("  Round %d/2", p.item.Round)
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(pos)

	line := left
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}

	bar := components.NewProgressBar("", p.progress(), false, max(width-8, 10))
	return line + "\n" + "    " + bar.View()
}

func (p *PracticeScreen) progress() float64 {
	if p.item == nil || p.item.Total == 0 {
		return 0
	}
	return float64(p.item.Index) / float64(p.item.Total)
}

func (p *PracticeScreen) renderTypedArea(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + p.input.View()))

	if len(p.hints) > 0 {
		b.WriteString("\n\n")
		for _, h := range p.hints {
			line := theme.Hint.Render("hint: " + h.Content)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (p *PracticeScreen) renderRecognitionArea(width int) string {
	var b strings.Builder

	if !p.revealed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to reveal the answer"))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(p.item.Answer))
	b.WriteString("\n\n")

	ratings := []struct {
		key   string
		label string
		style lipgloss.Style
	}{
		{"1", "Again", theme.Incorrect},
		{"2", "Hard", theme.Partial},
		{"3", "Good", lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)},
		{"4", "Easy", theme.Correct},
	}
	parts := make([]string, 0, len(ratings))
	for _, r := range ratings {
		parts = append(parts, r.style.Render(fmt.Sprintf("[%s] %s", r.key, r.label)))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "    ")))

	return b.String()
}

// renderFeedback renders the verdict for the answer just submitted.
func (p *PracticeScreen) renderFeedback(width int) string {
	out := p.outcome
	if out == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if out.Evaluation == nil {
		// Recognition self-rating.
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render(ratingLabel(out.Rating)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + p.input.View()))
		b.WriteString("\n\n")
		b.WriteString(p.renderEvaluation(width, out.Evaluation))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (p *PracticeScreen) renderEvaluation(width int, eval *evaluate.Evaluation) string {
	var b strings.Builder

	var headline string
	var style lipgloss.Style
	switch eval.Reason {
	case evaluate.ReasonExact:
		headline, style = "Correct!", theme.Correct
	case evaluate.ReasonSynonym:
		headline, style = "Accepted — a known synonym", theme.Correct
	case evaluate.ReasonTypo:
		headline, style = "Close enough — watch the spelling", theme.Partial
	case evaluate.ReasonHintUsed:
		headline, style = "Right, with a little help", theme.Partial
	default:
		headline, style = "Not quite", theme.Incorrect
	}

	b.WriteString(style.
		Width(width).
		Align(lipgloss.Center).
		Render(headline))

	if p.answered != nil && eval.Reason != evaluate.ReasonExact {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Expected: %s", p.answered.Answer)))
	}

	if len(eval.Suggestions) > 0 && eval.Reason == evaluate.ReasonWrong {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Also accepted: " + strings.Join(eval.Suggestions, ", ")))
	}

	return b.String()
}

func modeLabel(m review.Mode) string {
	switch m {
	case review.ModeTranslationInput:
		return "typed, both directions"
	case review.ModeReverseInput:
		return "typed, reverse"
	default:
		return "flashcards"
	}
}

func ratingLabel(rating int) string {
	switch rating {
	case 1:
		return "Marked: again soon"
	case 2:
		return "Marked: hard"
	case 3:
		return "Marked: good"
	case 4:
		return "Marked: easy"
	default:
		return "Recorded"
	}
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers you already gave are saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your session...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}
