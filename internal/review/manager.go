package review

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekuzmin/vokab/internal/evaluate"
	"github.com/ekuzmin/vokab/internal/hint"
	"github.com/ekuzmin/vokab/internal/schedule"
	"github.com/ekuzmin/vokab/internal/store"
)

// Outcome is the result of submitting one answer or rating.
type Outcome struct {
	// Rating is the quality rating that was applied, either chosen by
	// the learner or derived from the evaluated answer.
	Rating int
	// Evaluation is nil for recognition-mode self-ratings.
	Evaluation *evaluate.Evaluation
	// SessionCompleted is true when this was the last item.
	SessionCompleted bool
	// Next is the item to present now, nil when the session completed.
	Next  *ItemView
	Stats Stats
}

// finished keeps the terminal stats of a completed session so
// EndSession stays idempotent after the live state is gone.
type finished struct {
	learnerID string
	stats     Stats
	endedAt   time.Time
}

// Manager owns all live sessions. All methods are safe for concurrent
// use; per-session mutation is serialized by the session's own lock.
type Manager struct {
	mu       sync.RWMutex
	words    store.WordRepo
	events   store.EventRepo
	sessions map[string]*session
	done     map[string]finished
	now      func() time.Time
}

// NewManager creates a Manager on top of the word and event repos.
func NewManager(words store.WordRepo, events store.EventRepo) *Manager {
	return &Manager{
		words:    words,
		events:   events,
		sessions: make(map[string]*session),
		done:     make(map[string]finished),
		now:      time.Now,
	}
}

// CreateSession queries the word store, builds the item queue and
// registers a new live session. Daily sessions draw due words; training
// sessions draw from the filtered word list. ErrNoWordsDue is returned
// when the query comes back empty.
func (m *Manager) CreateSession(ctx context.Context, learnerID string, kind SessionType, mode Mode, filter store.WordFilter) (Session, *ItemView, error) {
	words, err := m.queueWords(ctx, kind, filter)
	if err != nil {
		return Session{}, nil, err
	}
	if len(words) == 0 {
		return Session{}, nil, ErrNoWordsDue
	}

	s := &session{
		id:        uuid.NewString(),
		learnerID: learnerID,
		mode:      mode,
		kind:      kind,
		words:     make(map[int]store.Word, len(words)),
		hintKinds: make(map[hint.Kind]bool),
		startedAt: m.now(),
	}
	for _, w := range words {
		s.words[w.ID] = w
	}
	s.items, s.roundBoundary = buildQueue(words, mode)
	s.stats.TotalItems = len(s.items)

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	// Telemetry only; a failed append never blocks the session.
	_ = m.events.AppendSession(ctx, store.SessionEventData{
		SessionID:   s.id,
		LearnerID:   learnerID,
		Action:      "start",
		Mode:        string(mode),
		SessionType: string(kind),
		TotalItems:  len(s.items),
	})

	info := Session{
		ID:         s.id,
		LearnerID:  learnerID,
		Type:       kind,
		Mode:       mode,
		TotalItems: len(s.items),
	}
	return info, m.viewItem(s, s.items[0]), nil
}

func (m *Manager) queueWords(ctx context.Context, kind SessionType, filter store.WordFilter) ([]store.Word, error) {
	if kind == TypeDaily {
		words, err := m.words.DueWords(ctx, m.now(), DailyBatchLimit)
		if err != nil {
			return nil, fmt.Errorf("query due words: %w", err)
		}
		return words, nil
	}
	words, err := m.words.TrainingWords(ctx, filter, TrainingBatchLimit)
	if err != nil {
		return nil, fmt.Errorf("query training words: %w", err)
	}
	return words, nil
}

// buildQueue expands words into queue items. Translation-input sessions
// run every word forward, then every word again in reverse; the flip
// point is recorded explicitly so callers never infer it from the queue
// length.
func buildQueue(words []store.Word, mode Mode) ([]item, int) {
	switch mode {
	case ModeTranslationInput:
		items := make([]item, 0, 2*len(words))
		for _, w := range words {
			items = append(items, item{wordID: w.ID, direction: DirectionForward})
		}
		for _, w := range words {
			items = append(items, item{wordID: w.ID, direction: DirectionReverse})
		}
		return items, len(words)
	case ModeReverseInput:
		items := make([]item, 0, len(words))
		for _, w := range words {
			items = append(items, item{wordID: w.ID, direction: DirectionReverse})
		}
		return items, 0
	default: // recognition and mixed
		items := make([]item, 0, len(words))
		for _, w := range words {
			items = append(items, item{wordID: w.ID, direction: DirectionForward})
		}
		return items, 0
	}
}

// CurrentItem returns the session's position without mutating anything.
// A completed session answers with its final stats.
func (m *Manager) CurrentItem(learnerID, sessionID string) (Progress, error) {
	s, err := m.lookup(learnerID, sessionID)
	if err != nil {
		if fin, ok := m.lookupDone(learnerID, sessionID); ok {
			return Progress{Completed: true, Stats: fin.stats}, nil
		}
		return Progress{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.current()
	if cur == nil {
		return Progress{Completed: true, Stats: s.stats}, nil
	}
	return Progress{Item: m.viewItem(s, *cur), Stats: s.stats}, nil
}

// SubmitRating applies a learner-chosen quality rating to the current
// item of a recognition session.
func (m *Manager) SubmitRating(ctx context.Context, learnerID, sessionID string, wordID, rating, timeMs int) (*Outcome, error) {
	s, err := m.lookupLive(learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeRecognition && s.mode != ModeMixed {
		return nil, ErrModeMismatch
	}
	cur, err := s.matchCurrent(wordID)
	if err != nil {
		return nil, err
	}
	if rating < schedule.RatingAgain || rating > schedule.RatingEasy {
		return nil, fmt.Errorf("%w: got %d", schedule.ErrInvalidRating, rating)
	}

	w := s.words[wordID]
	correct := rating >= schedule.RatingGood

	if s.kind == TypeDaily {
		if err := m.commitReview(ctx, s, &w, rating, nil); err != nil {
			return nil, err
		}
	}

	_ = m.events.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:   s.id,
		WordID:      w.ID,
		Term:        w.Term,
		Mode:        string(s.mode),
		SessionType: string(s.kind),
		Direction:   string(cur.direction),
		Score:       rating,
		Correct:     correct,
		TimeMs:      timeMs,
	})

	return m.advanceQueue(ctx, s, rating, correct, timeMs, nil), nil
}

// SubmitAnswer grades a typed answer against the current item of an
// input-mode session. hintsUsed is the number of penalty-carrying hints
// the learner took for this item.
func (m *Manager) SubmitAnswer(ctx context.Context, learnerID, sessionID string, wordID int, input string, hintsUsed, timeMs int) (*Outcome, error) {
	s, err := m.lookupLive(learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeTranslationInput && s.mode != ModeReverseInput {
		return nil, ErrModeMismatch
	}
	cur, err := s.matchCurrent(wordID)
	if err != nil {
		return nil, err
	}

	w := s.words[wordID]
	eval := evaluate.Evaluate(input, answer(w, cur.direction), w.Synonyms, hintsUsed)
	rating := eval.Score

	res := store.InputResult{
		Correct:    eval.Correct(),
		Score:      eval.Score,
		ResponseMs: timeMs,
	}
	if s.kind == TypeDaily {
		if err := m.commitReview(ctx, s, &w, rating, &res); err != nil {
			return nil, err
		}
	} else {
		// Free practice never blocks on a failed history write.
		_ = m.words.RecordAttempt(ctx, w.ID, res)
	}

	_ = m.events.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:     s.id,
		WordID:        w.ID,
		Term:          w.Term,
		Mode:          string(s.mode),
		SessionType:   string(s.kind),
		Direction:     string(cur.direction),
		LearnerAnswer: input,
		Score:         eval.Score,
		Reason:        string(eval.Reason),
		Correct:       eval.Correct(),
		TimeMs:        timeMs,
	})

	return m.advanceQueue(ctx, s, rating, eval.Correct(), timeMs, &eval), nil
}

// RequestHint generates a hint for the current item and logs it. The
// same hint kind is granted at most once per item.
func (m *Manager) RequestHint(ctx context.Context, learnerID, sessionID string, wordID int, kind hint.Kind, alreadyUsed int) (hint.Hint, error) {
	s, err := m.lookupLive(learnerID, sessionID)
	if err != nil {
		return hint.Hint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeTranslationInput && s.mode != ModeReverseInput {
		return hint.Hint{}, ErrModeMismatch
	}
	cur, err := s.matchCurrent(wordID)
	if err != nil {
		return hint.Hint{}, err
	}
	if s.hintKinds[kind] {
		return hint.Hint{}, ErrHintRepeated
	}

	w := s.words[wordID]
	h := hint.Generate(answer(w, cur.direction), kind, alreadyUsed)
	if h.Content == "" {
		return h, nil
	}

	s.hintKinds[kind] = true
	_ = m.events.AppendHint(ctx, store.HintEventData{
		SessionID: s.id,
		WordID:    w.ID,
		Kind:      string(kind),
		Content:   h.Content,
		Penalty:   h.Penalty,
	})
	return h, nil
}

// EndSession closes a session and returns its final stats. Ending an
// already-completed session is a no-op that answers with the same
// stats, so clients can retry safely.
func (m *Manager) EndSession(ctx context.Context, learnerID, sessionID string) (Stats, error) {
	s, err := m.lookup(learnerID, sessionID)
	if err != nil {
		if fin, ok := m.lookupDone(learnerID, sessionID); ok {
			return fin.stats, nil
		}
		return Stats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m.finish(ctx, s)
	return s.stats, nil
}

// Sweep drops live sessions older than maxAge and finished records of
// the same age, returning how many were removed. Sessions have no
// internal timeout, so a host should call this periodically.
func (m *Manager) Sweep(maxAge time.Duration) int {
	cutoff := m.now().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.startedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	for id, fin := range m.done {
		if fin.endedAt.Before(cutoff) {
			delete(m.done, id)
		}
	}
	return removed
}

// ActiveCount reports the number of live sessions.
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// commitReview advances the schedule for one answered word and writes
// it through. The queue cursor is only moved after the write succeeds,
// so a failed write leaves the item current and the answer retryable.
func (m *Manager) commitReview(ctx context.Context, s *session, w *store.Word, rating int, input *store.InputResult) error {
	res, err := schedule.Advance(w.MasteryLevel, rating, m.now())
	if err != nil {
		return err
	}

	upd := store.ReviewUpdate{
		MasteryLevel: res.Level,
		IntervalDays: res.IntervalDays,
		LastReviewAt: m.now(),
		Input:        input,
	}
	if !res.Retired() {
		next := res.NextReview
		upd.NextReviewAt = &next
	}

	if err := m.words.ApplyReview(ctx, w.ID, upd); err != nil {
		return fmt.Errorf("commit review: %w", err)
	}

	// Refresh the snapshot so a second-round answer in this session
	// advances from the new level.
	w.MasteryLevel = res.Level
	w.IntervalDays = res.IntervalDays
	s.words[w.ID] = *w
	return nil
}

// advanceQueue marks the current item done, updates stats and moves the
// cursor. Caller must hold s.mu.
func (m *Manager) advanceQueue(ctx context.Context, s *session, rating int, correct bool, timeMs int, eval *evaluate.Evaluation) *Outcome {
	s.items[s.cursor].done = true
	s.cursor++
	s.hintKinds = make(map[hint.Kind]bool)

	s.stats.Completed++
	if correct {
		s.stats.Correct++
	}
	s.stats.RatingSum += rating
	s.stats.TimeSpentSec += timeMs / 1000

	out := &Outcome{
		Rating:     rating,
		Evaluation: eval,
		Stats:      s.stats,
	}

	if cur := s.current(); cur != nil {
		out.Next = m.viewItem(s, *cur)
		return out
	}

	out.SessionCompleted = true
	m.finish(ctx, s)
	return out
}

// finish retires a live session into the finished map and emits the end
// event. Caller must hold s.mu.
func (m *Manager) finish(ctx context.Context, s *session) {
	m.mu.Lock()
	if _, live := m.sessions[s.id]; !live {
		m.mu.Unlock()
		return
	}
	delete(m.sessions, s.id)
	m.done[s.id] = finished{
		learnerID: s.learnerID,
		stats:     s.stats,
		endedAt:   m.now(),
	}
	m.mu.Unlock()

	_ = m.events.AppendSession(ctx, store.SessionEventData{
		SessionID:      s.id,
		LearnerID:      s.learnerID,
		Action:         "end",
		Mode:           string(s.mode),
		SessionType:    string(s.kind),
		TotalItems:     s.stats.TotalItems,
		CompletedItems: s.stats.Completed,
		CorrectAnswers: s.stats.Correct,
		DurationSecs:   int(m.now().Sub(s.startedAt).Seconds()),
	})
}

func (m *Manager) viewItem(s *session, it item) *ItemView {
	w := s.words[it.wordID]
	return &ItemView{
		SessionID:    s.id,
		Index:        s.cursor,
		Total:        len(s.items),
		Round:        s.round(),
		WordID:       w.ID,
		Prompt:       prompt(w, it.direction),
		Answer:       answer(w, it.direction),
		Direction:    it.direction,
		MasteryLevel: w.MasteryLevel,
	}
}

// lookup finds a live session owned by learnerID.
func (m *Manager) lookup(learnerID, sessionID string) (*session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok || s.learnerID != learnerID {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// lookupLive is lookup plus a distinct error for completed sessions, so
// a stale client learns it is submitting into a finished session rather
// than a vanished one.
func (m *Manager) lookupLive(learnerID, sessionID string) (*session, error) {
	s, err := m.lookup(learnerID, sessionID)
	if err != nil {
		if _, ok := m.lookupDone(learnerID, sessionID); ok {
			return nil, ErrSessionCompleted
		}
		return nil, err
	}
	return s, nil
}

func (m *Manager) lookupDone(learnerID, sessionID string) (finished, bool) {
	m.mu.RLock()
	fin, ok := m.done[sessionID]
	m.mu.RUnlock()
	if !ok || fin.learnerID != learnerID {
		return finished{}, false
	}
	return fin, true
}

// matchCurrent returns the current item if it matches wordID. Caller
// must hold s.mu.
func (s *session) matchCurrent(wordID int) (item, error) {
	cur := s.current()
	if cur == nil {
		return item{}, ErrSessionCompleted
	}
	if cur.wordID != wordID {
		return item{}, fmt.Errorf("%w: want word %d, got %d", ErrItemMismatch, cur.wordID, wordID)
	}
	return *cur, nil
}
