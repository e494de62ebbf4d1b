// Package review runs live review and training sessions: it builds the
// item queue, grades answers, feeds quality ratings into the mastery
// scheduler and accumulates per-session statistics.
package review

import (
	"sync"
	"time"

	"github.com/ekuzmin/vokab/internal/hint"
	"github.com/ekuzmin/vokab/internal/store"
)

// Mode selects how the learner answers during a session.
type Mode string

const (
	// ModeRecognition shows the term, reveals the translation and lets
	// the learner self-rate recall quality.
	ModeRecognition Mode = "recognition"
	// ModeTranslationInput asks the learner to type answers, first
	// term to translation for every word, then the reverse direction.
	ModeTranslationInput Mode = "translation_input"
	// ModeReverseInput asks for the term given the translation.
	ModeReverseInput Mode = "reverse_input"
	// ModeMixed is reserved. It currently behaves like ModeRecognition.
	ModeMixed Mode = "mixed"
)

// SessionType separates scheduled reviews from free practice.
type SessionType string

const (
	// TypeDaily reviews due words and commits scheduling changes after
	// every answer.
	TypeDaily SessionType = "daily"
	// TypeTraining practices any filtered subset. Attempts are logged
	// but scheduling state is never touched.
	TypeTraining SessionType = "training"
)

// Direction is the prompt/answer orientation of one queue item.
type Direction string

const (
	// DirectionForward prompts with the term, expects the translation.
	DirectionForward Direction = "forward"
	// DirectionReverse prompts with the translation, expects the term.
	DirectionReverse Direction = "reverse"
)

// Queue caps per session type.
const (
	DailyBatchLimit    = 50
	TrainingBatchLimit = 20
)

// Stats accumulates over a session's lifetime.
type Stats struct {
	TotalItems   int
	Completed    int
	Correct      int
	RatingSum    int
	TimeSpentSec int
}

// Accuracy is the accepted-answer ratio over completed items.
func (s Stats) Accuracy() float64 {
	if s.Completed == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Completed)
}

// AverageRating is the mean quality rating over completed items.
func (s Stats) AverageRating() float64 {
	if s.Completed == 0 {
		return 0
	}
	return float64(s.RatingSum) / float64(s.Completed)
}

// item is one slot of the session queue. The same word appears twice in
// a translation-input session, once per direction.
type item struct {
	wordID    int
	direction Direction
	done      bool
}

// session is the in-memory state of one live session. It is never
// persisted: losing it loses in-progress telemetry, never committed
// scheduling state, which is written through after each daily answer.
type session struct {
	mu        sync.Mutex
	id        string
	learnerID string
	mode      Mode
	kind      SessionType
	items     []item
	// words snapshots the queue's word data at creation time. Daily
	// sessions refresh a snapshot entry after each committed review so
	// a second-round answer advances from the updated level.
	words         map[int]store.Word
	cursor        int
	roundBoundary int
	hintKinds     map[hint.Kind]bool
	startedAt     time.Time
	stats         Stats
}

// round is 1-based; a translation-input session flips to round 2 when
// the cursor crosses the stored boundary.
func (s *session) round() int {
	if s.roundBoundary > 0 && s.cursor >= s.roundBoundary {
		return 2
	}
	return 1
}

func (s *session) current() *item {
	if s.cursor >= len(s.items) {
		return nil
	}
	return &s.items[s.cursor]
}

// prompt and answer orient a word for one queue item.
func prompt(w store.Word, d Direction) string {
	if d == DirectionReverse {
		return w.Translation
	}
	return w.Term
}

func answer(w store.Word, d Direction) string {
	if d == DirectionReverse {
		return w.Term
	}
	return w.Translation
}

// Session is the public snapshot handed back at creation.
type Session struct {
	ID         string
	LearnerID  string
	Type       SessionType
	Mode       Mode
	TotalItems int
}

// ItemView is what a client needs to present the current item.
type ItemView struct {
	SessionID    string
	Index        int // 0-based position in the queue
	Total        int
	Round        int
	WordID       int
	Prompt       string
	Answer       string
	Direction    Direction
	MasteryLevel int
}

// Progress reports where a session stands.
type Progress struct {
	// Item is nil once the session has completed.
	Item      *ItemView
	Completed bool
	Stats     Stats
}
