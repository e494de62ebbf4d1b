// Package evaluate grades a typed answer against the expected text of a
// word, producing a 1..4 score plus a reason the UI can surface.
package evaluate

import "github.com/ekuzmin/vokab/internal/textmatch"

// Reason explains how an answer earned its score.
type Reason string

const (
	ReasonExact    Reason = "exact"
	ReasonSynonym  Reason = "synonym"
	ReasonTypo     Reason = "typo"
	ReasonHintUsed Reason = "hint_used"
	ReasonWrong    Reason = "wrong"
)

// Score bounds shared with the scheduler's rating scale.
const (
	ScoreWrong   = 1
	ScorePartial = 2
	ScoreGood    = 3
	ScorePerfect = 4
)

// typoSimilarityFloor is the minimum similarity ratio for an answer to
// still count as a typo rather than a wrong answer.
const typoSimilarityFloor = 0.70

// maxSuggestions caps the correction list shown after a miss.
const maxSuggestions = 3

// Evaluation is the full result of grading one answer.
type Evaluation struct {
	Score       int
	Reason      Reason
	Similarity  float64
	Suggestions []string
}

// Correct reports whether the answer was accepted in some form.
func (e Evaluation) Correct() bool {
	return e.Reason != ReasonWrong
}

// Evaluate grades input against expected. synonyms are alternative
// accepted answers; hintsUsed caps the score at 2 for any accepted
// answer. Checks run in fixed order: empty input, word-count shape,
// exact match, synonym match, typo tolerance, then wrong.
func Evaluate(input, expected string, synonyms []string, hintsUsed int) Evaluation {
	in := textmatch.Normalize(input)
	exp := textmatch.Normalize(expected)

	if in == "" {
		return Evaluation{
			Score:       ScoreWrong,
			Reason:      ReasonWrong,
			Suggestions: suggestions(expected, synonyms),
		}
	}

	// A different number of words is never a typo, even when the
	// similarity ratio would otherwise clear the floor.
	if textmatch.Spaces(in) != textmatch.Spaces(exp) {
		return Evaluation{
			Score:      ScoreWrong,
			Reason:     ReasonWrong,
			Similarity: textmatch.Similarity(in, exp),
		}
	}

	if in == exp {
		return accepted(ScorePerfect, ReasonExact, 1.0, hintsUsed)
	}

	for _, syn := range synonyms {
		if in == textmatch.Normalize(syn) {
			return accepted(ScoreGood, ReasonSynonym, 1.0, hintsUsed)
		}
	}

	sim := textmatch.Similarity(in, exp)
	dist := textmatch.Distance(in, exp)
	longest := max(len([]rune(in)), len([]rune(exp)))
	if sim >= typoSimilarityFloor && dist <= maxAllowedDistance(longest) {
		e := accepted(ScoreGood, ReasonTypo, sim, hintsUsed)
		e.Suggestions = suggestions(expected, synonyms)
		return e
	}

	return Evaluation{
		Score:       ScoreWrong,
		Reason:      ReasonWrong,
		Similarity:  sim,
		Suggestions: suggestions(expected, synonyms),
	}
}

func accepted(score int, reason Reason, sim float64, hintsUsed int) Evaluation {
	if hintsUsed > 0 {
		return Evaluation{Score: ScorePartial, Reason: ReasonHintUsed, Similarity: sim}
	}
	return Evaluation{Score: score, Reason: reason, Similarity: sim}
}

// maxAllowedDistance scales typo tolerance with word length.
func maxAllowedDistance(longest int) int {
	switch {
	case longest <= 4:
		return 1
	case longest <= 8:
		return 2
	default:
		return 3
	}
}

func suggestions(expected string, synonyms []string) []string {
	out := append([]string{expected}, synonyms...)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
