package practice

import (
	"github.com/ekuzmin/vokab/internal/hint"
	"github.com/ekuzmin/vokab/internal/review"
)

// sessionStartedMsg is sent when the session manager has built the queue.
type sessionStartedMsg struct {
	Session review.Session
	Item    *review.ItemView
	Err     error
}

// outcomeMsg carries the result of a submitted rating or answer.
type outcomeMsg struct {
	Outcome *review.Outcome
	Err     error
}

// hintMsg carries a generated hint, or the refusal to repeat one.
type hintMsg struct {
	Hint hint.Hint
	Err  error
}

// sessionEndedMsg is sent when an early end has been committed.
type sessionEndedMsg struct {
	Stats review.Stats
	Err   error
}
