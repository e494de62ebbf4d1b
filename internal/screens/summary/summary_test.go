package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ekuzmin/vokab/internal/review"
)

func testStats() review.Stats {
	return review.Stats{
		TotalItems:   14,
		Completed:    14,
		Correct:      11,
		RatingSum:    42,
		TimeSpentSec: 305,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testStats(), review.TypeDaily, review.ModeRecognition)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testStats(), review.TypeDaily, review.ModeRecognition)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "14/14") {
		t.Errorf("expected answered count in view, got:\n%s", view)
	}
	if !strings.Contains(view, "79%") {
		t.Errorf("expected accuracy in view, got:\n%s", view)
	}
}

func TestSummaryScreen_EarlyEndHeadline(t *testing.T) {
	stats := testStats()
	stats.Completed = 6
	stats.Correct = 5
	s := New(stats, review.TypeTraining, review.ModeTranslationInput)
	view := s.View(80, 24)
	if !strings.Contains(view, "ended early") {
		t.Errorf("expected early-end headline, got:\n%s", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testStats(), review.TypeDaily, review.ModeRecognition)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testStats(), review.TypeDaily, review.ModeRecognition)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testStats(), review.TypeDaily, review.ModeRecognition)
	if len(s.KeyHints()) == 0 {
		t.Error("expected footer key hints")
	}
}
