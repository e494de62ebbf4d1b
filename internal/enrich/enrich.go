// Package enrich asks a hosted model for extra material on a stored
// word: alternative translations and an example sentence. Suggestions
// merge into the word through the regular partial-update path.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/ekuzmin/vokab/internal/llm"
	"github.com/ekuzmin/vokab/internal/store"
	"github.com/ekuzmin/vokab/internal/textmatch"
)

// Suggestion is the structured output requested from the model.
type Suggestion struct {
	Synonyms           []string `json:"synonyms"`
	Example            string   `json:"example"`
	ExampleTranslation string   `json:"example_translation"`
}

// Service generates and applies enrichment suggestions.
type Service struct {
	provider llm.Provider
	words    store.WordRepo
}

// NewService creates an enrichment service.
func NewService(provider llm.Provider, words store.WordRepo) *Service {
	return &Service{provider: provider, words: words}
}

const systemPrompt = `You are a bilingual lexicographer helping a learner
build a personal vocabulary list. Suggest alternative translations a
native speaker would accept as answers, and one short natural example
sentence. Never invent rare or archaic synonyms.`

// Suggest asks the model for enrichment material on one word.
func (s *Service) Suggest(ctx context.Context, term, translation string) (*Suggestion, error) {
	ctx = llm.WithPurpose(ctx, "enrich")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    buildPrompt(term, translation),
		Schema:    suggestionSchema(),
		MaxTokens: 512,
	})
	if err != nil {
		return nil, fmt.Errorf("generate enrichment: %w", err)
	}

	var out Suggestion
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("decode enrichment: %w", err)
	}
	return &out, nil
}

// Apply merges a suggestion into the stored word. New synonyms are
// deduplicated against the existing list; the primary translation never
// appears as its own synonym. The example lands in the notes field when
// none is set yet.
func (s *Service) Apply(ctx context.Context, wordID int, sug *Suggestion) (*store.Word, error) {
	w, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, err
	}

	merged := mergeSynonyms(w, sug.Synonyms)
	upd := store.WordUpdate{Synonyms: &merged}

	if w.Notes == "" && sug.Example != "" {
		notes := sug.Example
		if sug.ExampleTranslation != "" {
			notes += "\n" + sug.ExampleTranslation
		}
		upd.Notes = &notes
	}

	return s.words.Update(ctx, wordID, upd)
}

func buildPrompt(term, translation string) string {
	return fmt.Sprintf(
		"Word: %q\nKnown translation: %q\n\nSuggest up to 5 synonyms for the translation and one example sentence using the word, with its translation.",
		term, translation,
	)
}

func suggestionSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "word-enrichment",
		Description: "Alternative translations and an example sentence for a vocabulary word",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"synonyms": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Alternative translations a checker should accept",
				},
				"example": map[string]any{
					"type":        "string",
					"description": "One short example sentence using the word",
				},
				"example_translation": map[string]any{
					"type":        "string",
					"description": "Translation of the example sentence",
				},
			},
			"required":             []any{"synonyms", "example", "example_translation"},
			"additionalProperties": false,
		},
	}
}

// mergeSynonyms appends new entries that normalize to something not
// already present, preserving the stored order.
func mergeSynonyms(w *store.Word, incoming []string) []string {
	seen := make(map[string]bool, len(w.Synonyms)+1)
	seen[textmatch.Normalize(w.Translation)] = true
	for _, s := range w.Synonyms {
		seen[textmatch.Normalize(s)] = true
	}

	merged := slices.Clone(w.Synonyms)
	for _, s := range incoming {
		norm := textmatch.Normalize(s)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		merged = append(merged, strings.TrimSpace(s))
	}
	return merged
}
