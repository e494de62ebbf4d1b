package review

import "errors"

var (
	// ErrSessionNotFound covers unknown session IDs and sessions owned
	// by a different learner. The two cases are deliberately
	// indistinguishable to the caller.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCompleted is returned when submitting to a session that
	// already finished. EndSession still answers with the final stats.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrNoWordsDue means the word query for a new session came back
	// empty. Nothing to review is a normal state, not a failure.
	ErrNoWordsDue = errors.New("no words available for a session")

	// ErrItemMismatch means the submitted word is not the session's
	// current item; the client is out of sync and must re-fetch.
	ErrItemMismatch = errors.New("submitted item is not the current item")

	// ErrModeMismatch means the operation does not apply to the
	// session's mode, e.g. a self-rating sent to a typed-input session.
	ErrModeMismatch = errors.New("operation not valid for session mode")

	// ErrHintRepeated means the same hint kind was requested twice for
	// one item.
	ErrHintRepeated = errors.New("hint kind already used for this item")
)
