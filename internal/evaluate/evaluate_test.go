package evaluate

import (
	"reflect"
	"testing"
)

func TestEvaluateExact(t *testing.T) {
	e := Evaluate("apple", "apple", nil, 0)
	if e.Score != ScorePerfect || e.Reason != ReasonExact {
		t.Errorf("got %+v, want exact/4", e)
	}
	if e.Similarity != 1.0 {
		t.Errorf("similarity = %f, want 1.0", e.Similarity)
	}

	// Case and surrounding whitespace never matter.
	e = Evaluate("  APPLE ", "apple", nil, 0)
	if e.Score != ScorePerfect || e.Reason != ReasonExact {
		t.Errorf("got %+v, want exact/4", e)
	}
}

func TestEvaluateHintCapsScore(t *testing.T) {
	e := Evaluate("apple", "apple", nil, 1)
	if e.Score != ScorePartial || e.Reason != ReasonHintUsed {
		t.Errorf("got %+v, want hint_used/2", e)
	}

	e = Evaluate("sofa", "couch", []string{"sofa"}, 2)
	if e.Score != ScorePartial || e.Reason != ReasonHintUsed {
		t.Errorf("synonym with hints: got %+v, want hint_used/2", e)
	}
}

func TestEvaluateSynonym(t *testing.T) {
	e := Evaluate("sofa", "couch", []string{"Sofa", "settee"}, 0)
	if e.Score != ScoreGood || e.Reason != ReasonSynonym {
		t.Errorf("got %+v, want synonym/3", e)
	}
}

func TestEvaluateTypo(t *testing.T) {
	cases := []struct {
		input, expected string
		wantTypo        bool
	}{
		{"aple", "apple", true},       // 1 edit, length 5
		{"recieve", "receive", true},  // 2 edits, length 7, ratio just above the floor
		{"cta", "cat", false},         // 2 edits but short words only allow 1
		{"молако", "молоко", true},    // 1 edit over 6 runes
		{"banana", "apple", false},    // unrelated
		{"aplpication", "application", true}, // 2 edits, length 11
	}
	for _, tc := range cases {
		e := Evaluate(tc.input, tc.expected, nil, 0)
		if tc.wantTypo && (e.Score != ScoreGood || e.Reason != ReasonTypo) {
			t.Errorf("Evaluate(%q, %q) = %+v, want typo/3", tc.input, tc.expected, e)
		}
		if !tc.wantTypo && e.Reason != ReasonWrong {
			t.Errorf("Evaluate(%q, %q) = %+v, want wrong", tc.input, tc.expected, e)
		}
	}
}

func TestEvaluateWordCountMismatch(t *testing.T) {
	// High similarity cannot rescue an answer with a different word
	// count; the shape check runs before typo tolerance.
	e := Evaluate("icecream", "ice cream", nil, 0)
	if e.Score != ScoreWrong || e.Reason != ReasonWrong {
		t.Errorf("got %+v, want wrong/1", e)
	}
	if e.Similarity == 0 {
		t.Error("similarity should still be reported on a shape mismatch")
	}
}

func TestEvaluateEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		e := Evaluate(in, "couch", []string{"sofa", "settee", "divan"}, 0)
		if e.Score != ScoreWrong || e.Reason != ReasonWrong {
			t.Errorf("Evaluate(%q) = %+v, want wrong/1", in, e)
		}
		want := []string{"couch", "sofa", "settee"}
		if !reflect.DeepEqual(e.Suggestions, want) {
			t.Errorf("Evaluate(%q) suggestions = %v, want %v", in, e.Suggestions, want)
		}
	}
}

func TestEvaluateSuggestions(t *testing.T) {
	e := Evaluate("xyz", "couch", []string{"sofa", "settee", "divan"}, 0)
	want := []string{"couch", "sofa", "settee"}
	if !reflect.DeepEqual(e.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", e.Suggestions, want)
	}

	e = Evaluate("xyz", "couch", nil, 0)
	if !reflect.DeepEqual(e.Suggestions, []string{"couch"}) {
		t.Errorf("suggestions = %v, want [couch]", e.Suggestions)
	}
}
