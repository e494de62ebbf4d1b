package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a word lookup matches nothing.
var ErrNotFound = errors.New("not found")

// Word is the domain view of a vocabulary item. Repos translate between
// this and the ent entity so callers never touch generated types.
type Word struct {
	ID            int
	Term          string
	Translation   string
	Synonyms      []string
	Tags          []string
	Notes         string
	MasteryLevel  int
	IntervalDays  int
	LastReviewAt  *time.Time
	NextReviewAt  *time.Time
	AttemptCount  int
	CorrectCount  int
	LastScore     int
	AvgResponseMs int
	CreatedAt     time.Time
}

// Retired reports whether the word has left the review schedule.
func (w Word) Retired() bool {
	return w.MasteryLevel >= 5
}

// WordUpdate is a partial update. Only non-nil fields are applied, so an
// edit can change the translation without clobbering tags written by a
// concurrent import.
type WordUpdate struct {
	Translation *string
	Synonyms    *[]string
	Tags        *[]string
	Notes       *string
}

// InputResult carries the typed-answer outcome that feeds the word's
// attempt history.
type InputResult struct {
	Correct    bool
	Score      int
	ResponseMs int
}

// ReviewUpdate is the scheduling state written back after a graded
// review. Input is nil for recognition-mode reviews, which self-grade
// without typing.
type ReviewUpdate struct {
	MasteryLevel int
	IntervalDays int
	LastReviewAt time.Time
	NextReviewAt *time.Time // nil once the word retires
	Input        *InputResult
}

// WordFilter selects words for a training session. A negative MaxMastery
// disables the mastery cut-off; empty Tags matches everything.
type WordFilter struct {
	Tags       []string
	MaxMastery int
}

// WordRepo is the persistence boundary for vocabulary items.
type WordRepo interface {
	Create(ctx context.Context, w *Word) (*Word, error)
	GetByID(ctx context.Context, id int) (*Word, error)
	FindByTerm(ctx context.Context, term string) (*Word, error)
	List(ctx context.Context) ([]Word, error)
	Update(ctx context.Context, id int, upd WordUpdate) (*Word, error)
	Delete(ctx context.Context, id int) error

	// DueWords returns active words due at now, oldest due date first,
	// capped at limit.
	DueWords(ctx context.Context, now time.Time, limit int) ([]Word, error)

	// TrainingWords returns filtered words newest first, capped at limit.
	TrainingWords(ctx context.Context, f WordFilter, limit int) ([]Word, error)

	// ApplyReview commits the scheduling outcome of one review.
	ApplyReview(ctx context.Context, id int, upd ReviewUpdate) error

	// RecordAttempt folds a typed answer into the word's attempt history
	// without touching scheduling state.
	RecordAttempt(ctx context.Context, id int, res InputResult) error

	CountByMastery(ctx context.Context) (map[int]int, error)
	DueCount(ctx context.Context, now time.Time) (int, error)
}

// AttemptEventData captures one graded answer for the event log.
type AttemptEventData struct {
	SessionID     string
	WordID        int
	Term          string
	Mode          string
	SessionType   string
	Direction     string
	LearnerAnswer string
	Score         int
	Reason        string
	Correct       bool
	TimeMs        int
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID      string
	LearnerID      string
	Action         string
	Mode           string
	SessionType    string
	TotalItems     int
	CompletedItems int
	CorrectAnswers int
	DurationSecs   int
}

// HintEventData captures a hint shown to the learner.
type HintEventData struct {
	SessionID string
	WordID    int
	Kind      string
	Content   string
	Penalty   bool
}

// LLMRequestEventData captures an LLM API call for cost tracking.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo appends to the immutable event log.
type EventRepo interface {
	AppendAttempt(ctx context.Context, data AttemptEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendHint(ctx context.Context, data HintEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentAccuracy returns the accepted-answer ratio over the latest
	// limit attempts, or 0 when no attempts exist.
	RecentAccuracy(ctx context.Context, limit int) (float64, error)
}
