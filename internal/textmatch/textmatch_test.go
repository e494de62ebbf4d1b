package textmatch

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Hello  World  ", "hello world"},
		{"HELLO", "hello"},
		{"a\t b\n c", "a b c"},
		{"", ""},
		{"   ", ""},
		{"Привет Мир", "привет мир"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"   ", "", 1.0},
		{"", "word", 0.0},
		{"word", "word", 1.0},
		{"Word", "word", 1.0},
		{"word", "word ", 1.0},
		{"recieve", "receive", 1.0 - 2.0/7.0},
		{"cat", "dog", 0.0},
		{"молоко", "молоко", 1.0},
	}
	for _, tc := range cases {
		got := Similarity(tc.a, tc.b)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %f, want %f", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDistanceCountsRunes(t *testing.T) {
	// One substitution in a Cyrillic word must count as a single edit,
	// not as a byte-level diff.
	if got := Distance("молоко", "мOлOко"); got != 2 {
		t.Errorf("Distance = %d, want 2", got)
	}
	if got := Distance("кот", "кол"); got != 1 {
		t.Errorf("Distance = %d, want 1", got)
	}
}

func TestSpaces(t *testing.T) {
	if got := Spaces("  ice   cream  "); got != 1 {
		t.Errorf("Spaces = %d, want 1", got)
	}
	if got := Spaces("one two three"); got != 2 {
		t.Errorf("Spaces = %d, want 2", got)
	}
	if got := Spaces("single"); got != 0 {
		t.Errorf("Spaces = %d, want 0", got)
	}
}
