// Package schedule implements the mastery ladder that spaces word
// reviews. Advancement is a pure function of the current level and the
// quality rating of the latest answer.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Quality ratings a review answer can earn.
const (
	RatingAgain = 1 // did not know it
	RatingHard  = 2 // recalled with difficulty
	RatingGood  = 3
	RatingEasy  = 4
)

// MaxLevel is the retired level. Words at MaxLevel no longer appear in
// due queries until a later rating of 1 drops them back to zero.
const MaxLevel = 5

// intervalDays maps a mastery level to the gap before the next review.
// MaxLevel has no entry on purpose.
var intervalDays = map[int]int{
	0: 1,
	1: 6,
	2: 12,
	3: 24,
	4: 48,
}

// ErrInvalidRating is returned for ratings outside 1..4. Ratings are
// never clamped; an out-of-range value means the caller is broken.
var ErrInvalidRating = errors.New("rating must be between 1 and 4")

// ErrInvalidLevel is returned for mastery levels outside 0..5.
var ErrInvalidLevel = errors.New("mastery level must be between 0 and 5")

// Result is the scheduling outcome of one review.
type Result struct {
	Level        int
	IntervalDays int
	// NextReview is zero when the word retired at MaxLevel.
	NextReview time.Time
}

// Retired reports whether the word left the active schedule.
func (r Result) Retired() bool {
	return r.Level == MaxLevel
}

// Advance applies one quality rating to a mastery level and derives the
// next review date from now. Rating 1 always resets to level 0, even
// from the retired level; there is no guard that pins a retired word.
func Advance(level, rating int, now time.Time) (Result, error) {
	if level < 0 || level > MaxLevel {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	if rating < RatingAgain || rating > RatingEasy {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}

	next := level
	switch rating {
	case RatingAgain:
		next = 0
	case RatingHard:
		// unchanged
	case RatingGood:
		next = min(level+1, MaxLevel-1)
	case RatingEasy:
		next = min(level+2, MaxLevel)
	}

	if next == MaxLevel {
		return Result{Level: MaxLevel}, nil
	}
	days := intervalDays[next]
	return Result{
		Level:        next,
		IntervalDays: days,
		NextReview:   now.AddDate(0, 0, days),
	}, nil
}

// IntervalDays returns the review gap for a level, or 0 for the retired
// level.
func IntervalDays(level int) int {
	return intervalDays[level]
}
