package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWordCreateAndDueQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	w, err := repo.Create(ctx, &Word{
		Term:        "molniya",
		Translation: "lightning",
		Synonyms:    []string{"bolt"},
		Tags:        []string{"weather"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if w.NextReviewAt == nil {
		t.Fatal("a new word must be due immediately")
	}

	due, err := repo.DueWords(ctx, time.Now().Add(time.Minute), 50)
	if err != nil {
		t.Fatalf("due words: %v", err)
	}
	if len(due) != 1 || due[0].Term != "molniya" {
		t.Fatalf("due = %+v, want the new word", due)
	}
}

func TestApplyReviewRetiresWord(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	w, err := repo.Create(ctx, &Word{Term: "sneg", Translation: "snow"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now()
	err = repo.ApplyReview(ctx, w.ID, ReviewUpdate{
		MasteryLevel: 5,
		LastReviewAt: now,
		NextReviewAt: nil,
	})
	if err != nil {
		t.Fatalf("apply review: %v", err)
	}

	got, err := repo.GetByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Retired() || got.NextReviewAt != nil {
		t.Errorf("word not retired: %+v", got)
	}

	due, err := repo.DueWords(ctx, now.Add(time.Hour), 50)
	if err != nil {
		t.Fatalf("due words: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("retired word still due: %+v", due)
	}
}

func TestRecordAttemptCounters(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	w, err := repo.Create(ctx, &Word{Term: "dozhd", Translation: "rain"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.RecordAttempt(ctx, w.ID, InputResult{Correct: true, Score: 4, ResponseMs: 900}); err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if err := repo.RecordAttempt(ctx, w.ID, InputResult{Correct: false, Score: 1, ResponseMs: 300}); err != nil {
		t.Fatalf("record attempt: %v", err)
	}

	got, err := repo.GetByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AttemptCount != 2 || got.CorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 2/1", got.AttemptCount, got.CorrectCount)
	}
	if got.LastScore != 1 {
		t.Errorf("last score = %d, want 1", got.LastScore)
	}
	if got.AvgResponseMs != 600 {
		t.Errorf("avg response = %d, want 600", got.AvgResponseMs)
	}
}

func TestWordUpdatePartial(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	w, err := repo.Create(ctx, &Word{
		Term:        "veter",
		Translation: "wind",
		Tags:        []string{"weather"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	trans := "breeze"
	got, err := repo.Update(ctx, w.ID, WordUpdate{Translation: &trans})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Translation != "breeze" {
		t.Errorf("translation = %q", got.Translation)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "weather" {
		t.Errorf("tags clobbered by partial update: %v", got.Tags)
	}
}

func TestNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByTerm(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("find missing: err = %v, want ErrNotFound", err)
	}
}

func TestEventSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	if err := events.AppendSession(ctx, SessionEventData{
		SessionID:   "s1",
		LearnerID:   "local",
		Action:      "start",
		Mode:        "translation_input",
		SessionType: "daily",
		TotalItems:  3,
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	for i := 0; i < 3; i++ {
		err := events.AppendAttempt(ctx, AttemptEventData{
			SessionID:   "s1",
			WordID:      1,
			Term:        "sneg",
			Mode:        "translation_input",
			SessionType: "daily",
			Direction:   "forward",
			Score:       4,
			Correct:     i < 2,
			TimeMs:      1000,
		})
		if err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	acc, err := events.RecentAccuracy(ctx, 10)
	if err != nil {
		t.Fatalf("recent accuracy: %v", err)
	}
	if want := 2.0 / 3.0; acc != want {
		t.Errorf("accuracy = %f, want %f", acc, want)
	}
}
