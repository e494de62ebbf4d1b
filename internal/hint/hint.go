// Package hint builds the textual hints a learner can request before
// typing an answer. Hints never reveal the full target text.
package hint

import (
	"fmt"
	"strings"

	"github.com/ekuzmin/vokab/internal/textmatch"
)

// Kind identifies a hint flavor.
type Kind string

const (
	// KindLength reveals the character count of the target.
	KindLength Kind = "length"
	// KindFirstLetter reveals the first character of the target.
	KindFirstLetter Kind = "first_letter"
)

// Hint is the generated content plus whether requesting it costs the
// learner a score penalty on the eventual answer.
type Hint struct {
	Kind    Kind
	Content string
	Penalty bool
}

// Generate produces a hint for target. alreadyUsed is the number of hints
// the learner has taken for the current item before this one; the length
// hint is free of penalty only when it is not the first hint taken. An
// unrecognized kind yields an empty hint with no penalty.
func Generate(target string, kind Kind, alreadyUsed int) Hint {
	norm := textmatch.Normalize(target)
	switch kind {
	case KindLength:
		return Hint{
			Kind:    KindLength,
			Content: lengthContent(norm),
			Penalty: alreadyUsed == 0,
		}
	case KindFirstLetter:
		return Hint{
			Kind:    KindFirstLetter,
			Content: firstLetterContent(norm),
			Penalty: true,
		}
	default:
		return Hint{Kind: kind}
	}
}

func lengthContent(norm string) string {
	runes := []rune(norm)
	content := fmt.Sprintf("%d characters", len(runes))
	if spaces := strings.Count(norm, " "); spaces > 0 {
		noun := "space"
		if spaces > 1 {
			noun = "spaces"
		}
		content += fmt.Sprintf(" (including %d %s)", spaces, noun)
	}
	return content
}

func firstLetterContent(norm string) string {
	if norm == "" {
		return `Starts with: ""`
	}
	return fmt.Sprintf("Starts with: %q", string([]rune(norm)[0]))
}
