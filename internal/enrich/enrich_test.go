package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ekuzmin/vokab/internal/llm"
	"github.com/ekuzmin/vokab/internal/store"
)

type fakeWordRepoFull struct {
	word    *store.Word
	updates []store.WordUpdate
}

func (f *fakeWordRepoFull) GetByID(ctx context.Context, id int) (*store.Word, error) {
	if f.word == nil || f.word.ID != id {
		return nil, store.ErrNotFound
	}
	return f.word, nil
}

func (f *fakeWordRepoFull) Update(ctx context.Context, id int, upd store.WordUpdate) (*store.Word, error) {
	f.updates = append(f.updates, upd)
	w := *f.word
	if upd.Synonyms != nil {
		w.Synonyms = *upd.Synonyms
	}
	if upd.Notes != nil {
		w.Notes = *upd.Notes
	}
	return &w, nil
}

func (f *fakeWordRepoFull) Create(ctx context.Context, w *store.Word) (*store.Word, error) {
	return w, nil
}
func (f *fakeWordRepoFull) FindByTerm(ctx context.Context, term string) (*store.Word, error) {
	return nil, store.ErrNotFound
}
func (f *fakeWordRepoFull) List(ctx context.Context) ([]store.Word, error) { return nil, nil }
func (f *fakeWordRepoFull) Delete(ctx context.Context, id int) error       { return nil }
func (f *fakeWordRepoFull) DueWords(ctx context.Context, now time.Time, limit int) ([]store.Word, error) {
	return nil, nil
}
func (f *fakeWordRepoFull) TrainingWords(ctx context.Context, filter store.WordFilter, limit int) ([]store.Word, error) {
	return nil, nil
}
func (f *fakeWordRepoFull) ApplyReview(ctx context.Context, id int, upd store.ReviewUpdate) error {
	return nil
}
func (f *fakeWordRepoFull) RecordAttempt(ctx context.Context, id int, res store.InputResult) error {
	return nil
}
func (f *fakeWordRepoFull) CountByMastery(ctx context.Context) (map[int]int, error) {
	return nil, nil
}
func (f *fakeWordRepoFull) DueCount(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func TestSuggestParsesStructuredOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"synonyms":["sofa","settee"],"example":"The couch sagged.","example_translation":"Диван просел."}`),
	})
	svc := NewService(mock, &fakeWordRepoFull{})

	sug, err := svc.Suggest(context.Background(), "диван", "couch")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(sug.Synonyms) != 2 || sug.Synonyms[0] != "sofa" {
		t.Errorf("synonyms = %v", sug.Synonyms)
	}
	if sug.Example == "" {
		t.Error("missing example")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "word-enrichment" {
		t.Errorf("schema = %+v", req.Schema)
	}
}

func TestSuggestPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, &fakeWordRepoFull{})

	_, err := svc.Suggest(context.Background(), "диван", "couch")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestApplyMergesSynonyms(t *testing.T) {
	repo := &fakeWordRepoFull{
		word: &store.Word{
			ID:          7,
			Term:        "диван",
			Translation: "couch",
			Synonyms:    []string{"sofa"},
		},
	}
	svc := NewService(llm.NewMockProvider(), repo)

	got, err := svc.Apply(context.Background(), 7, &Suggestion{
		// "Couch" and "SOFA" normalize to existing entries and must be
		// dropped; "settee" is new.
		Synonyms: []string{"Couch", "SOFA", "settee"},
		Example:  "The couch sagged.",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := []string{"sofa", "settee"}
	if len(got.Synonyms) != len(want) || got.Synonyms[1] != "settee" {
		t.Errorf("synonyms = %v, want %v", got.Synonyms, want)
	}
	if got.Notes != "The couch sagged." {
		t.Errorf("notes = %q", got.Notes)
	}
}

func TestApplyKeepsExistingNotes(t *testing.T) {
	repo := &fakeWordRepoFull{
		word: &store.Word{
			ID:          7,
			Term:        "диван",
			Translation: "couch",
			Notes:       "my own note",
		},
	}
	svc := NewService(llm.NewMockProvider(), repo)

	got, err := svc.Apply(context.Background(), 7, &Suggestion{
		Synonyms: []string{"sofa"},
		Example:  "The couch sagged.",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Notes != "my own note" {
		t.Errorf("notes overwritten: %q", got.Notes)
	}
}
