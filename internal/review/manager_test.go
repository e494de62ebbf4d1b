package review

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ekuzmin/vokab/internal/evaluate"
	"github.com/ekuzmin/vokab/internal/hint"
	"github.com/ekuzmin/vokab/internal/schedule"
	"github.com/ekuzmin/vokab/internal/store"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type appliedReview struct {
	wordID int
	upd    store.ReviewUpdate
}

type fakeWordRepo struct {
	due       []store.Word
	training  []store.Word
	applied   []appliedReview
	attempts  []store.InputResult
	failApply error
}

func (f *fakeWordRepo) DueWords(ctx context.Context, now time.Time, limit int) ([]store.Word, error) {
	if len(f.due) > limit {
		return f.due[:limit], nil
	}
	return f.due, nil
}

func (f *fakeWordRepo) TrainingWords(ctx context.Context, filter store.WordFilter, limit int) ([]store.Word, error) {
	if len(f.training) > limit {
		return f.training[:limit], nil
	}
	return f.training, nil
}

func (f *fakeWordRepo) ApplyReview(ctx context.Context, id int, upd store.ReviewUpdate) error {
	if f.failApply != nil {
		return f.failApply
	}
	f.applied = append(f.applied, appliedReview{wordID: id, upd: upd})
	return nil
}

func (f *fakeWordRepo) RecordAttempt(ctx context.Context, id int, res store.InputResult) error {
	f.attempts = append(f.attempts, res)
	return nil
}

func (f *fakeWordRepo) Create(ctx context.Context, w *store.Word) (*store.Word, error) {
	return w, nil
}
func (f *fakeWordRepo) GetByID(ctx context.Context, id int) (*store.Word, error) {
	return nil, store.ErrNotFound
}
func (f *fakeWordRepo) FindByTerm(ctx context.Context, term string) (*store.Word, error) {
	return nil, store.ErrNotFound
}
func (f *fakeWordRepo) List(ctx context.Context) ([]store.Word, error) { return nil, nil }
func (f *fakeWordRepo) Update(ctx context.Context, id int, upd store.WordUpdate) (*store.Word, error) {
	return nil, store.ErrNotFound
}
func (f *fakeWordRepo) Delete(ctx context.Context, id int) error { return nil }
func (f *fakeWordRepo) CountByMastery(ctx context.Context) (map[int]int, error) {
	return nil, nil
}
func (f *fakeWordRepo) DueCount(ctx context.Context, now time.Time) (int, error) {
	return len(f.due), nil
}

type fakeEventRepo struct {
	attempts []store.AttemptEventData
	sessions []store.SessionEventData
	hints    []store.HintEventData
}

func (f *fakeEventRepo) AppendAttempt(ctx context.Context, d store.AttemptEventData) error {
	f.attempts = append(f.attempts, d)
	return nil
}
func (f *fakeEventRepo) AppendSession(ctx context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}
func (f *fakeEventRepo) AppendHint(ctx context.Context, d store.HintEventData) error {
	f.hints = append(f.hints, d)
	return nil
}
func (f *fakeEventRepo) AppendLLMRequest(ctx context.Context, d store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) RecentAccuracy(ctx context.Context, limit int) (float64, error) {
	return 0, nil
}

func testWords() []store.Word {
	return []store.Word{
		{ID: 1, Term: "sneg", Translation: "snow", MasteryLevel: 2},
		{ID: 2, Term: "dozhd", Translation: "rain", Synonyms: []string{"rainfall"}, MasteryLevel: 0},
	}
}

func newTestManager(words *fakeWordRepo, events *fakeEventRepo) *Manager {
	m := NewManager(words, events)
	m.now = func() time.Time { return testNow }
	return m
}

func TestCreateSessionNoWordsDue(t *testing.T) {
	m := newTestManager(&fakeWordRepo{}, &fakeEventRepo{})

	_, _, err := m.CreateSession(context.Background(), "local", TypeDaily, ModeRecognition, store.WordFilter{MaxMastery: -1})
	if !errors.Is(err, ErrNoWordsDue) {
		t.Fatalf("err = %v, want ErrNoWordsDue", err)
	}
}

func TestCreateSessionRecognitionQueue(t *testing.T) {
	events := &fakeEventRepo{}
	m := newTestManager(&fakeWordRepo{due: testWords()}, events)

	info, first, err := m.CreateSession(context.Background(), "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if info.TotalItems != 2 {
		t.Errorf("total items = %d, want 2", info.TotalItems)
	}
	if first.Prompt != "sneg" || first.Answer != "snow" || first.Direction != DirectionForward {
		t.Errorf("first item = %+v", first)
	}
	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Errorf("start event not logged: %+v", events.sessions)
	}
}

func TestCreateSessionTranslationInputDoublesQueue(t *testing.T) {
	m := newTestManager(&fakeWordRepo{due: testWords()}, &fakeEventRepo{})

	info, first, err := m.CreateSession(context.Background(), "local", TypeDaily, ModeTranslationInput, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if info.TotalItems != 4 {
		t.Errorf("total items = %d, want 4", info.TotalItems)
	}
	if first.Round != 1 || first.Direction != DirectionForward {
		t.Errorf("first item = %+v", first)
	}
}

func TestSubmitAnswerDailyAdvancesSchedule(t *testing.T) {
	words := &fakeWordRepo{due: testWords()}
	m := newTestManager(words, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeTranslationInput, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Exact answer on a level-2 word: score 4 moves it to level 4.
	out, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "snow", 0, 1500)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Rating != 4 || out.Evaluation.Reason != evaluate.ReasonExact {
		t.Errorf("outcome = %+v", out)
	}
	if len(words.applied) != 1 {
		t.Fatalf("applied = %d writes, want 1", len(words.applied))
	}
	upd := words.applied[0].upd
	if upd.MasteryLevel != 4 || upd.IntervalDays != 48 {
		t.Errorf("update = %+v, want level 4 / 48d", upd)
	}
	if upd.NextReviewAt == nil || !upd.NextReviewAt.Equal(testNow.AddDate(0, 0, 48)) {
		t.Errorf("next review = %v", upd.NextReviewAt)
	}
	if upd.Input == nil || !upd.Input.Correct || upd.Input.ResponseMs != 1500 {
		t.Errorf("input history = %+v", upd.Input)
	}
	if out.Next == nil || out.Next.WordID != 2 {
		t.Errorf("next item = %+v", out.Next)
	}
}

func TestSubmitAnswerStoreFailureKeepsCursor(t *testing.T) {
	words := &fakeWordRepo{due: testWords(), failApply: errors.New("disk full")}
	m := newTestManager(words, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeTranslationInput, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "snow", 0, 1000); err == nil {
		t.Fatal("expected error from failed store write")
	}

	// The item stays current and the answer can be retried.
	prog, err := m.CurrentItem("local", first.SessionID)
	if err != nil {
		t.Fatalf("current item: %v", err)
	}
	if prog.Item == nil || prog.Item.WordID != 1 {
		t.Errorf("current item = %+v, want word 1 still pending", prog.Item)
	}
	if prog.Stats.Completed != 0 {
		t.Errorf("completed = %d, want 0", prog.Stats.Completed)
	}

	words.failApply = nil
	if _, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "snow", 0, 1000); err != nil {
		t.Fatalf("retry after recovery: %v", err)
	}
}

func TestTrainingNeverTouchesSchedule(t *testing.T) {
	words := &fakeWordRepo{training: testWords()}
	m := newTestManager(words, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeTraining, ModeReverseInput, store.WordFilter{MaxMastery: -1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Direction != DirectionReverse || first.Prompt != "snow" {
		t.Errorf("first item = %+v", first)
	}

	out, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "sneg", 0, 800)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Rating != 4 {
		t.Errorf("rating = %d, want 4", out.Rating)
	}
	if len(words.applied) != 0 {
		t.Errorf("training session wrote scheduling state: %+v", words.applied)
	}
	if len(words.attempts) != 1 || !words.attempts[0].Correct {
		t.Errorf("attempt history = %+v", words.attempts)
	}
}

func TestRoundFlipAtBoundary(t *testing.T) {
	m := newTestManager(&fakeWordRepo{due: testWords()}, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeTranslationInput, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "snow", 0, 0)
	if err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	if out.Next.Round != 1 {
		t.Errorf("round after item 1 = %d, want 1", out.Next.Round)
	}

	out, err = m.SubmitAnswer(ctx, "local", first.SessionID, 2, "rain", 0, 0)
	if err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	if out.Next.Round != 2 || out.Next.Direction != DirectionReverse {
		t.Errorf("item after boundary = %+v, want round 2 reverse", out.Next)
	}
	if out.Next.Prompt != "snow" || out.Next.Answer != "sneg" {
		t.Errorf("reverse item = %+v", out.Next)
	}
}

func TestSecondRoundUsesUpdatedMastery(t *testing.T) {
	words := &fakeWordRepo{due: []store.Word{
		{ID: 1, Term: "sneg", Translation: "snow", MasteryLevel: 0},
	}}
	m := newTestManager(words, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeTranslationInput, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Round 1: level 0 + score 4 -> level 2.
	if _, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "snow", 0, 0); err != nil {
		t.Fatalf("submit round 1: %v", err)
	}
	// Round 2 must advance from level 2, not the stale level 0.
	if _, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "sneg", 0, 0); err != nil {
		t.Fatalf("submit round 2: %v", err)
	}

	if len(words.applied) != 2 {
		t.Fatalf("applied = %d writes, want 2", len(words.applied))
	}
	if got := words.applied[1].upd.MasteryLevel; got != 4 {
		t.Errorf("round 2 level = %d, want 4", got)
	}
}

func TestSubmitItemMismatch(t *testing.T) {
	m := newTestManager(&fakeWordRepo{due: testWords()}, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := m.SubmitRating(ctx, "local", first.SessionID, 2, 3, 0); !errors.Is(err, ErrItemMismatch) {
		t.Errorf("err = %v, want ErrItemMismatch", err)
	}
}

func TestConcurrentSubmitAdvancesOnce(t *testing.T) {
	words := &fakeWordRepo{due: testWords()}
	m := newTestManager(words, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Two racing submissions for the same current item: exactly one
	// may advance the cursor and write the schedule update.
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.SubmitRating(ctx, "local", first.SessionID, first.WordID, 3, 900)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var accepted, rejected int
	for err := range errs {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, ErrItemMismatch), errors.Is(err, ErrSessionCompleted):
			rejected++
		default:
			t.Fatalf("submit: %v", err)
		}
	}
	if accepted != 1 || rejected != 1 {
		t.Fatalf("submissions accepted/rejected = %d/%d, want 1/1", accepted, rejected)
	}
	if len(words.applied) != 1 {
		t.Errorf("applied = %d writes, want 1", len(words.applied))
	}

	prog, err := m.CurrentItem("local", first.SessionID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if prog.Stats.Completed != 1 {
		t.Errorf("completed = %d, want 1", prog.Stats.Completed)
	}
}

func TestSubmitModeMismatch(t *testing.T) {
	m := newTestManager(&fakeWordRepo{due: testWords()}, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "snow", 0, 0); !errors.Is(err, ErrModeMismatch) {
		t.Errorf("SubmitAnswer on recognition session: err = %v, want ErrModeMismatch", err)
	}
}

func TestSubmitInvalidRating(t *testing.T) {
	words := &fakeWordRepo{due: testWords()}
	m := newTestManager(words, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := m.SubmitRating(ctx, "local", first.SessionID, 1, 7, 0); !errors.Is(err, schedule.ErrInvalidRating) {
		t.Errorf("err = %v, want ErrInvalidRating", err)
	}
	if len(words.applied) != 0 {
		t.Errorf("invalid rating reached the store: %+v", words.applied)
	}
}

func TestLearnerMismatchIsNotFound(t *testing.T) {
	m := newTestManager(&fakeWordRepo{due: testWords()}, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := m.CurrentItem("intruder", first.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
	if _, err := m.SubmitRating(ctx, "intruder", first.SessionID, 1, 3, 0); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestHintFlow(t *testing.T) {
	events := &fakeEventRepo{}
	m := newTestManager(&fakeWordRepo{due: testWords()}, events)
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeTranslationInput, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	h, err := m.RequestHint(ctx, "local", first.SessionID, 1, hint.KindLength, 0)
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if h.Content != "4 characters" || !h.Penalty {
		t.Errorf("hint = %+v", h)
	}

	if _, err := m.RequestHint(ctx, "local", first.SessionID, 1, hint.KindLength, 1); !errors.Is(err, ErrHintRepeated) {
		t.Errorf("repeat hint err = %v, want ErrHintRepeated", err)
	}

	if len(events.hints) != 1 {
		t.Fatalf("hint events = %d, want 1", len(events.hints))
	}

	// Answering with a hint taken caps the score at 2.
	out, err := m.SubmitAnswer(ctx, "local", first.SessionID, 1, "snow", 1, 0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Rating != 2 || out.Evaluation.Reason != evaluate.ReasonHintUsed {
		t.Errorf("outcome = %+v, want hint-capped 2", out)
	}

	// Hint bookkeeping resets for the next item.
	if _, err := m.RequestHint(ctx, "local", first.SessionID, 2, hint.KindLength, 0); err != nil {
		t.Errorf("hint on next item: %v", err)
	}
}

func TestSessionCompletionAndIdempotentEnd(t *testing.T) {
	events := &fakeEventRepo{}
	m := newTestManager(&fakeWordRepo{due: testWords()}, events)
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := m.SubmitRating(ctx, "local", first.SessionID, 1, 3, 2000); err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	out, err := m.SubmitRating(ctx, "local", first.SessionID, 2, 1, 3000)
	if err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	if !out.SessionCompleted || out.Next != nil {
		t.Errorf("outcome = %+v, want completed", out)
	}
	if out.Stats.Completed != 2 || out.Stats.Correct != 1 || out.Stats.RatingSum != 4 {
		t.Errorf("stats = %+v", out.Stats)
	}

	if m.ActiveCount() != 0 {
		t.Errorf("active count = %d, want 0", m.ActiveCount())
	}

	// EndSession after completion returns the same stats every time.
	for i := 0; i < 2; i++ {
		stats, err := m.EndSession(ctx, "local", first.SessionID)
		if err != nil {
			t.Fatalf("end session: %v", err)
		}
		if stats != out.Stats {
			t.Errorf("end stats = %+v, want %+v", stats, out.Stats)
		}
	}

	// Submitting into the finished session is a distinct condition.
	if _, err := m.SubmitRating(ctx, "local", first.SessionID, 1, 3, 0); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("err = %v, want ErrSessionCompleted", err)
	}

	var endings int
	for _, ev := range events.sessions {
		if ev.Action == "end" {
			endings++
		}
	}
	if endings != 1 {
		t.Errorf("end events = %d, want exactly 1", endings)
	}
}

func TestEndSessionMidway(t *testing.T) {
	m := newTestManager(&fakeWordRepo{due: testWords()}, &fakeEventRepo{})
	ctx := context.Background()

	_, first, err := m.CreateSession(ctx, "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.SubmitRating(ctx, "local", first.SessionID, 1, 4, 0); err != nil {
		t.Fatalf("submit: %v", err)
	}

	stats, err := m.EndSession(ctx, "local", first.SessionID)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if stats.Completed != 1 || stats.TotalItems != 2 {
		t.Errorf("stats = %+v", stats)
	}

	prog, err := m.CurrentItem("local", first.SessionID)
	if err != nil {
		t.Fatalf("current after end: %v", err)
	}
	if !prog.Completed {
		t.Error("session should report completed after EndSession")
	}
}

func TestSweepDropsStaleSessions(t *testing.T) {
	m := newTestManager(&fakeWordRepo{due: testWords()}, &fakeEventRepo{})
	ctx := context.Background()

	_, _, err := m.CreateSession(ctx, "local", TypeDaily, ModeRecognition, store.WordFilter{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	m.now = func() time.Time { return testNow.Add(13 * time.Hour) }
	if removed := m.Sweep(12 * time.Hour); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if m.ActiveCount() != 0 {
		t.Errorf("active count = %d, want 0", m.ActiveCount())
	}
}
