package hint

import "testing"

func TestGenerateLength(t *testing.T) {
	cases := []struct {
		name        string
		target      string
		alreadyUsed int
		wantContent string
		wantPenalty bool
	}{
		{"single word", "apple", 0, "5 characters", true},
		{"follow-up hint is free", "apple", 1, "5 characters", false},
		{"one space", "ice cream", 0, "9 characters (including 1 space)", true},
		{"two spaces", "as soon as", 0, "10 characters (including 2 spaces)", true},
		{"normalizes before counting", "  Ice   Cream ", 0, "9 characters (including 1 space)", true},
		{"cyrillic counts runes", "молоко", 0, "6 characters", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := Generate(tc.target, KindLength, tc.alreadyUsed)
			if h.Content != tc.wantContent {
				t.Errorf("content = %q, want %q", h.Content, tc.wantContent)
			}
			if h.Penalty != tc.wantPenalty {
				t.Errorf("penalty = %v, want %v", h.Penalty, tc.wantPenalty)
			}
		})
	}
}

func TestGenerateFirstLetter(t *testing.T) {
	h := Generate("Apple", KindFirstLetter, 0)
	if h.Content != `Starts with: "a"` {
		t.Errorf("content = %q", h.Content)
	}
	if !h.Penalty {
		t.Error("first letter hint must always carry a penalty")
	}

	// Penalty stays even when other hints were already used.
	h = Generate("apple", KindFirstLetter, 2)
	if !h.Penalty {
		t.Error("penalty dropped after prior hints")
	}

	h = Generate("молоко", KindFirstLetter, 0)
	if h.Content != `Starts with: "м"` {
		t.Errorf("content = %q", h.Content)
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	h := Generate("apple", Kind("audio"), 0)
	if h.Content != "" || h.Penalty {
		t.Errorf("unknown kind must yield empty content and no penalty, got %+v", h)
	}
}
