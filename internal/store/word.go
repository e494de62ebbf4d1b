package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ekuzmin/vokab/ent"
	"github.com/ekuzmin/vokab/ent/word"
	"github.com/ekuzmin/vokab/internal/schedule"
)

type wordRepo struct {
	client *ent.Client
}

func (r *wordRepo) Create(ctx context.Context, w *Word) (*Word, error) {
	builder := r.client.Word.Create().
		SetTerm(w.Term).
		SetTranslation(w.Translation).
		SetSynonyms(w.Synonyms).
		SetTags(w.Tags).
		SetNotes(w.Notes).
		SetMasteryLevel(w.MasteryLevel)

	// A fresh word is due immediately so the next daily session picks
	// it up. Imported words that already carry scheduling state keep it.
	if w.NextReviewAt != nil {
		builder = builder.SetNextReviewAt(*w.NextReviewAt)
	} else if w.MasteryLevel < schedule.MaxLevel {
		builder = builder.SetNextReviewAt(time.Now())
	}
	if w.LastReviewAt != nil {
		builder = builder.SetLastReviewAt(*w.LastReviewAt)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}
	return fromEnt(created), nil
}

func (r *wordRepo) GetByID(ctx context.Context, id int) (*Word, error) {
	w, err := r.client.Word.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("word %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get word: %w", err)
	}
	return fromEnt(w), nil
}

func (r *wordRepo) FindByTerm(ctx context.Context, term string) (*Word, error) {
	w, err := r.client.Word.Query().
		Where(word.Term(term)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("term %q: %w", term, ErrNotFound)
		}
		return nil, fmt.Errorf("find word by term: %w", err)
	}
	return fromEnt(w), nil
}

func (r *wordRepo) List(ctx context.Context) ([]Word, error) {
	rows, err := r.client.Word.Query().
		Order(ent.Asc(word.FieldTerm)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return fromEntSlice(rows), nil
}

func (r *wordRepo) Update(ctx context.Context, id int, upd WordUpdate) (*Word, error) {
	builder := r.client.Word.UpdateOneID(id)
	if upd.Translation != nil {
		builder = builder.SetTranslation(*upd.Translation)
	}
	if upd.Synonyms != nil {
		builder = builder.SetSynonyms(*upd.Synonyms)
	}
	if upd.Tags != nil {
		builder = builder.SetTags(*upd.Tags)
	}
	if upd.Notes != nil {
		builder = builder.SetNotes(*upd.Notes)
	}

	w, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("word %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update word: %w", err)
	}
	return fromEnt(w), nil
}

func (r *wordRepo) Delete(ctx context.Context, id int) error {
	if err := r.client.Word.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("word %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete word: %w", err)
	}
	return nil
}

func (r *wordRepo) DueWords(ctx context.Context, now time.Time, limit int) ([]Word, error) {
	rows, err := r.client.Word.Query().
		Where(
			word.MasteryLevelLT(schedule.MaxLevel),
			word.NextReviewAtNotNil(),
			word.NextReviewAtLTE(now),
		).
		Order(ent.Asc(word.FieldNextReviewAt), ent.Asc(word.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due words: %w", err)
	}
	return fromEntSlice(rows), nil
}

func (r *wordRepo) TrainingWords(ctx context.Context, f WordFilter, limit int) ([]Word, error) {
	q := r.client.Word.Query().
		Order(ent.Desc(word.FieldCreatedAt))
	if f.MaxMastery >= 0 {
		q = q.Where(word.MasteryLevelLTE(f.MaxMastery))
	}

	// Tag matching happens after the query: tags are a JSON column and
	// containment predicates are not portable across SQLite builds.
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query training words: %w", err)
	}

	var out []Word
	for _, row := range rows {
		if len(f.Tags) > 0 && !hasAnyTag(row.Tags, f.Tags) {
			continue
		}
		out = append(out, *fromEnt(row))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *wordRepo) ApplyReview(ctx context.Context, id int, upd ReviewUpdate) error {
	builder := r.client.Word.UpdateOneID(id).
		SetMasteryLevel(upd.MasteryLevel).
		SetIntervalDays(upd.IntervalDays).
		SetLastReviewAt(upd.LastReviewAt)

	if upd.NextReviewAt != nil {
		builder = builder.SetNextReviewAt(*upd.NextReviewAt)
	} else {
		builder = builder.ClearNextReviewAt()
	}

	if upd.Input != nil {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		builder = applyInput(builder, current, *upd.Input)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("word %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("apply review: %w", err)
	}
	return nil
}

func (r *wordRepo) RecordAttempt(ctx context.Context, id int, res InputResult) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	builder := applyInput(r.client.Word.UpdateOneID(id), current, res)
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

func (r *wordRepo) CountByMastery(ctx context.Context) (map[int]int, error) {
	rows, err := r.client.Word.Query().
		Select(word.FieldMasteryLevel).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by mastery: %w", err)
	}

	counts := make(map[int]int)
	for _, row := range rows {
		counts[row.MasteryLevel]++
	}
	return counts, nil
}

func (r *wordRepo) DueCount(ctx context.Context, now time.Time) (int, error) {
	n, err := r.client.Word.Query().
		Where(
			word.MasteryLevelLT(schedule.MaxLevel),
			word.NextReviewAtNotNil(),
			word.NextReviewAtLTE(now),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count due words: %w", err)
	}
	return n, nil
}

// applyInput folds one typed answer into the word's attempt counters and
// rolling latency mean.
func applyInput(builder *ent.WordUpdateOne, current *Word, res InputResult) *ent.WordUpdateOne {
	newAvg := current.AvgResponseMs
	if total := current.AttemptCount + 1; total > 0 {
		newAvg = (current.AvgResponseMs*current.AttemptCount + res.ResponseMs) / total
	}

	builder = builder.
		AddAttemptCount(1).
		SetLastScore(res.Score).
		SetAvgResponseMs(newAvg)
	if res.Correct {
		builder = builder.AddCorrectCount(1)
	}
	return builder
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

func fromEnt(e *ent.Word) *Word {
	return &Word{
		ID:            e.ID,
		Term:          e.Term,
		Translation:   e.Translation,
		Synonyms:      e.Synonyms,
		Tags:          e.Tags,
		Notes:         e.Notes,
		MasteryLevel:  e.MasteryLevel,
		IntervalDays:  e.IntervalDays,
		LastReviewAt:  e.LastReviewAt,
		NextReviewAt:  e.NextReviewAt,
		AttemptCount:  e.AttemptCount,
		CorrectCount:  e.CorrectCount,
		LastScore:     e.LastScore,
		AvgResponseMs: e.AvgResponseMs,
		CreatedAt:     e.CreatedAt,
	}
}

func fromEntSlice(rows []*ent.Word) []Word {
	out := make([]Word, 0, len(rows))
	for _, row := range rows {
		out = append(out, *fromEnt(row))
	}
	return out
}
