package schedule

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestAdvanceTable(t *testing.T) {
	cases := []struct {
		level, rating int
		wantLevel     int
		wantDays      int
	}{
		{0, 1, 0, 1},
		{0, 2, 0, 1},
		{0, 3, 1, 6},
		{0, 4, 2, 12},
		{2, 1, 0, 1},
		{2, 2, 2, 12},
		{2, 3, 3, 24},
		{2, 4, 4, 48},
		{3, 3, 4, 48},
		{3, 4, 5, 0},
		{4, 3, 4, 48}, // rating 3 never retires a word
		{4, 4, 5, 0},
		{5, 1, 0, 1}, // retired words regress on a failed review
		{5, 2, 5, 0},
		{5, 4, 5, 0},
	}
	for _, tc := range cases {
		got, err := Advance(tc.level, tc.rating, testNow)
		if err != nil {
			t.Fatalf("Advance(%d, %d): %v", tc.level, tc.rating, err)
		}
		if got.Level != tc.wantLevel || got.IntervalDays != tc.wantDays {
			t.Errorf("Advance(%d, %d) = level %d/%dd, want level %d/%dd",
				tc.level, tc.rating, got.Level, got.IntervalDays, tc.wantLevel, tc.wantDays)
		}
		if tc.wantLevel == MaxLevel {
			if !got.Retired() || !got.NextReview.IsZero() {
				t.Errorf("Advance(%d, %d): retired word must have no next review, got %+v",
					tc.level, tc.rating, got)
			}
		} else {
			want := testNow.AddDate(0, 0, tc.wantDays)
			if !got.NextReview.Equal(want) {
				t.Errorf("Advance(%d, %d): next review %v, want %v",
					tc.level, tc.rating, got.NextReview, want)
			}
		}
	}
}

func TestAdvanceRejectsBadRating(t *testing.T) {
	for _, rating := range []int{0, 5, -1, 100} {
		if _, err := Advance(2, rating, testNow); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Advance(2, %d) err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestAdvanceRejectsBadLevel(t *testing.T) {
	for _, level := range []int{-1, 6} {
		if _, err := Advance(level, 3, testNow); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Advance(%d, 3) err = %v, want ErrInvalidLevel", level, err)
		}
	}
}
