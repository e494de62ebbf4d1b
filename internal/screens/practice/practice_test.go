package practice

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ekuzmin/vokab/internal/review"
	"github.com/ekuzmin/vokab/internal/store"
)

// fakeWordRepo implements store.WordRepo over a fixed word slice.
type fakeWordRepo struct {
	words   []store.Word
	applied []store.ReviewUpdate
}

func (f *fakeWordRepo) Create(_ context.Context, w *store.Word) (*store.Word, error) {
	return w, nil
}
func (f *fakeWordRepo) GetByID(_ context.Context, id int) (*store.Word, error) {
	for i := range f.words {
		if f.words[i].ID == id {
			return &f.words[i], nil
		}
	}
	return nil, store.ErrNotFound
}
func (f *fakeWordRepo) FindByTerm(_ context.Context, _ string) (*store.Word, error) {
	return nil, store.ErrNotFound
}
func (f *fakeWordRepo) List(_ context.Context) ([]store.Word, error) { return f.words, nil }
func (f *fakeWordRepo) Update(_ context.Context, _ int, _ store.WordUpdate) (*store.Word, error) {
	return nil, store.ErrNotFound
}
func (f *fakeWordRepo) Delete(_ context.Context, _ int) error { return nil }
func (f *fakeWordRepo) DueWords(_ context.Context, _ time.Time, limit int) ([]store.Word, error) {
	if len(f.words) > limit {
		return f.words[:limit], nil
	}
	return f.words, nil
}
func (f *fakeWordRepo) TrainingWords(_ context.Context, _ store.WordFilter, limit int) ([]store.Word, error) {
	if len(f.words) > limit {
		return f.words[:limit], nil
	}
	return f.words, nil
}
func (f *fakeWordRepo) ApplyReview(_ context.Context, id int, upd store.ReviewUpdate) error {
	f.applied = append(f.applied, upd)
	return nil
}
func (f *fakeWordRepo) RecordAttempt(_ context.Context, _ int, _ store.InputResult) error {
	return nil
}
func (f *fakeWordRepo) CountByMastery(_ context.Context) (map[int]int, error) {
	return map[int]int{}, nil
}
func (f *fakeWordRepo) DueCount(_ context.Context, _ time.Time) (int, error) {
	return len(f.words), nil
}

// fakeEventRepo implements store.EventRepo and records nothing.
type fakeEventRepo struct{}

func (fakeEventRepo) AppendAttempt(_ context.Context, _ store.AttemptEventData) error  { return nil }
func (fakeEventRepo) AppendSession(_ context.Context, _ store.SessionEventData) error  { return nil }
func (fakeEventRepo) AppendHint(_ context.Context, _ store.HintEventData) error        { return nil }
func (fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (fakeEventRepo) RecentAccuracy(_ context.Context, _ int) (float64, error) { return 0, nil }

func testWords() []store.Word {
	due := time.Now().Add(-time.Hour)
	return []store.Word{
		{ID: 1, Term: "sobaka", Translation: "dog", MasteryLevel: 1, NextReviewAt: &due},
		{ID: 2, Term: "koshka", Translation: "cat", MasteryLevel: 2, NextReviewAt: &due},
	}
}

// startScreen builds a practice screen and runs the start command.
func startScreen(t *testing.T, kind review.SessionType, mode review.Mode) (*PracticeScreen, *fakeWordRepo) {
	t.Helper()
	repo := &fakeWordRepo{words: testWords()}
	mgr := review.NewManager(repo, fakeEventRepo{})
	p := New(mgr, "local", kind, mode, store.WordFilter{MaxMastery: -1})

	msg := p.startSession()()
	started, ok := msg.(sessionStartedMsg)
	if !ok {
		t.Fatalf("startSession returned %T", msg)
	}
	if started.Err != nil {
		t.Fatalf("start session: %v", started.Err)
	}
	s, _ := p.Update(started)
	return s.(*PracticeScreen), repo
}

func TestPracticeScreen_StartShowsFirstItem(t *testing.T) {
	p, _ := startScreen(t, review.TypeDaily, review.ModeRecognition)

	if p.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", p.phase)
	}
	view := p.View(80, 24)
	if !strings.Contains(view, "sobaka") {
		t.Errorf("expected first term in view, got:\n%s", view)
	}
	if strings.Contains(view, "dog") {
		t.Errorf("answer must stay hidden before reveal:\n%s", view)
	}
}

func TestPracticeScreen_RevealThenRate(t *testing.T) {
	p, repo := startScreen(t, review.TypeDaily, review.ModeRecognition)

	s, _ := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p = s.(*PracticeScreen)
	if !p.revealed {
		t.Fatal("expected answer revealed after enter")
	}
	if !strings.Contains(p.View(80, 24), "dog") {
		t.Error("expected revealed answer in view")
	}

	s, cmd := p.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	p = s.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected a submit command after rating")
	}
	out, ok := cmd().(outcomeMsg)
	if !ok || out.Err != nil {
		t.Fatalf("rating submit failed: %+v", out)
	}
	s, _ = p.Update(out)
	p = s.(*PracticeScreen)

	if p.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", p.phase)
	}
	if len(repo.applied) != 1 {
		t.Fatalf("applied reviews = %d, want 1", len(repo.applied))
	}
	if repo.applied[0].MasteryLevel != 2 {
		t.Errorf("mastery after good rating = %d, want 2", repo.applied[0].MasteryLevel)
	}
}

func TestPracticeScreen_TypedAnswerFlow(t *testing.T) {
	p, _ := startScreen(t, review.TypeTraining, review.ModeTranslationInput)

	if p.item.Total != 4 {
		t.Fatalf("typed session over 2 words should queue 4 items, got %d", p.item.Total)
	}

	p.input.Model.SetValue("dog")
	s, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p = s.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected a submit command after enter")
	}
	out, ok := cmd().(outcomeMsg)
	if !ok || out.Err != nil {
		t.Fatalf("answer submit failed: %+v", out)
	}
	s, _ = p.Update(out)
	p = s.(*PracticeScreen)

	if p.outcome == nil || p.outcome.Evaluation == nil {
		t.Fatal("expected evaluation in outcome")
	}
	if !p.outcome.Evaluation.Correct() {
		t.Errorf("exact answer graded wrong: %+v", p.outcome.Evaluation)
	}
	view := p.View(80, 24)
	if !strings.Contains(view, "Correct") {
		t.Error("expected correct verdict in feedback view")
	}
	// The answer line stays visible in feedback, marked with the verdict.
	if !strings.Contains(view, "Answer:") || !strings.Contains(view, "✓") {
		t.Error("expected submitted answer with verdict mark in feedback view")
	}
}

func TestPracticeScreen_FeedbackAdvancesToNextItem(t *testing.T) {
	p, _ := startScreen(t, review.TypeTraining, review.ModeRecognition)

	s, _ := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p = s.(*PracticeScreen)
	s, cmd := p.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	p = s.(*PracticeScreen)
	out := cmd().(outcomeMsg)
	s, _ = p.Update(out)
	p = s.(*PracticeScreen)

	s, _ = p.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	p = s.(*PracticeScreen)

	if p.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question after feedback dismissed", p.phase)
	}
	if p.item.Index != 1 {
		t.Errorf("item index = %d, want 1", p.item.Index)
	}
	if p.revealed {
		t.Error("reveal state must reset for the next item")
	}
}

func TestPracticeScreen_QuitConfirmEndsSession(t *testing.T) {
	p, _ := startScreen(t, review.TypeTraining, review.ModeRecognition)

	s, _ := p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	p = s.(*PracticeScreen)
	if p.phase != phaseQuitConfirm {
		t.Fatalf("phase = %d, want quit confirm", p.phase)
	}

	s, cmd := p.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	p = s.(*PracticeScreen)
	if cmd == nil {
		t.Fatal("expected end-session command")
	}
	ended, ok := cmd().(sessionEndedMsg)
	if !ok || ended.Err != nil {
		t.Fatalf("end session failed: %+v", ended)
	}
	_, cmd = p.Update(ended)
	if cmd == nil {
		t.Fatal("expected navigation to summary")
	}
}

func TestPracticeScreen_NoWordsShowsFriendlyError(t *testing.T) {
	repo := &fakeWordRepo{}
	mgr := review.NewManager(repo, fakeEventRepo{})
	p := New(mgr, "local", review.TypeDaily, review.ModeRecognition, store.WordFilter{MaxMastery: -1})

	msg := p.startSession()()
	s, _ := p.Update(msg)
	p = s.(*PracticeScreen)

	if p.phase != phaseError {
		t.Fatalf("phase = %d, want error", p.phase)
	}
	if !strings.Contains(p.View(80, 24), "Nothing due") {
		t.Error("expected friendly empty-queue message")
	}
}
