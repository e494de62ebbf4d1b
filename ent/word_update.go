// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ekuzmin/vokab/ent/predicate"
	"github.com/ekuzmin/vokab/ent/word"
)

// WordUpdate is the builder for updating Word entities.
type WordUpdate struct {
	config
	hooks    []Hook
	mutation *WordMutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdate) Where(ps ...predicate.Word) *WordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTerm sets the "term" field.
func (_u *WordUpdate) SetTerm(v string) *WordUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *WordUpdate) SetNillableTerm(v *string) *WordUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *WordUpdate) SetTranslation(v string) *WordUpdate {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *WordUpdate) SetNillableTranslation(v *string) *WordUpdate {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// SetSynonyms sets the "synonyms" field.
func (_u *WordUpdate) SetSynonyms(v []string) *WordUpdate {
	_u.mutation.SetSynonyms(v)
	return _u
}

// AppendSynonyms appends value to the "synonyms" field.
func (_u *WordUpdate) AppendSynonyms(v []string) *WordUpdate {
	_u.mutation.AppendSynonyms(v)
	return _u
}

// ClearSynonyms clears the value of the "synonyms" field.
func (_u *WordUpdate) ClearSynonyms() *WordUpdate {
	_u.mutation.ClearSynonyms()
	return _u
}

// SetTags sets the "tags" field.
func (_u *WordUpdate) SetTags(v []string) *WordUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *WordUpdate) AppendTags(v []string) *WordUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *WordUpdate) ClearTags() *WordUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *WordUpdate) SetNotes(v string) *WordUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *WordUpdate) SetNillableNotes(v *string) *WordUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *WordUpdate) SetMasteryLevel(v int) *WordUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *WordUpdate) SetNillableMasteryLevel(v *int) *WordUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *WordUpdate) AddMasteryLevel(v int) *WordUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *WordUpdate) SetIntervalDays(v int) *WordUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *WordUpdate) SetNillableIntervalDays(v *int) *WordUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *WordUpdate) AddIntervalDays(v int) *WordUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetLastReviewAt sets the "last_review_at" field.
func (_u *WordUpdate) SetLastReviewAt(v time.Time) *WordUpdate {
	_u.mutation.SetLastReviewAt(v)
	return _u
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_u *WordUpdate) SetNillableLastReviewAt(v *time.Time) *WordUpdate {
	if v != nil {
		_u.SetLastReviewAt(*v)
	}
	return _u
}

// ClearLastReviewAt clears the value of the "last_review_at" field.
func (_u *WordUpdate) ClearLastReviewAt() *WordUpdate {
	_u.mutation.ClearLastReviewAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *WordUpdate) SetNextReviewAt(v time.Time) *WordUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *WordUpdate) SetNillableNextReviewAt(v *time.Time) *WordUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *WordUpdate) ClearNextReviewAt() *WordUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *WordUpdate) SetAttemptCount(v int) *WordUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *WordUpdate) SetNillableAttemptCount(v *int) *WordUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *WordUpdate) AddAttemptCount(v int) *WordUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *WordUpdate) SetCorrectCount(v int) *WordUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *WordUpdate) SetNillableCorrectCount(v *int) *WordUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *WordUpdate) AddCorrectCount(v int) *WordUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *WordUpdate) SetLastScore(v int) *WordUpdate {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *WordUpdate) SetNillableLastScore(v *int) *WordUpdate {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *WordUpdate) AddLastScore(v int) *WordUpdate {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_u *WordUpdate) SetAvgResponseMs(v int) *WordUpdate {
	_u.mutation.ResetAvgResponseMs()
	_u.mutation.SetAvgResponseMs(v)
	return _u
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_u *WordUpdate) SetNillableAvgResponseMs(v *int) *WordUpdate {
	if v != nil {
		_u.SetAvgResponseMs(*v)
	}
	return _u
}

// AddAvgResponseMs adds value to the "avg_response_ms" field.
func (_u *WordUpdate) AddAvgResponseMs(v int) *WordUpdate {
	_u.mutation.AddAvgResponseMs(v)
	return _u
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdate) Mutation() *WordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdate) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := word.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "Word.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Translation(); ok {
		if err := word.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Word.translation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := word.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "Word.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *WordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(word.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(word.FieldTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synonyms(); ok {
		_spec.SetField(word.FieldSynonyms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynonyms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldSynonyms, value)
		})
	}
	if _u.mutation.SynonymsCleared() {
		_spec.ClearField(word.FieldSynonyms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(word.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(word.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(word.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(word.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(word.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(word.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(word.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewAt(); ok {
		_spec.SetField(word.FieldLastReviewAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewAtCleared() {
		_spec.ClearField(word.FieldLastReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(word.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(word.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(word.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(word.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(word.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(word.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(word.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(word.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseMs(); ok {
		_spec.SetField(word.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseMs(); ok {
		_spec.AddField(word.FieldAvgResponseMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WordUpdateOne is the builder for updating a single Word entity.
type WordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordMutation
}

// SetTerm sets the "term" field.
func (_u *WordUpdateOne) SetTerm(v string) *WordUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableTerm(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *WordUpdateOne) SetTranslation(v string) *WordUpdateOne {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableTranslation(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// SetSynonyms sets the "synonyms" field.
func (_u *WordUpdateOne) SetSynonyms(v []string) *WordUpdateOne {
	_u.mutation.SetSynonyms(v)
	return _u
}

// AppendSynonyms appends value to the "synonyms" field.
func (_u *WordUpdateOne) AppendSynonyms(v []string) *WordUpdateOne {
	_u.mutation.AppendSynonyms(v)
	return _u
}

// ClearSynonyms clears the value of the "synonyms" field.
func (_u *WordUpdateOne) ClearSynonyms() *WordUpdateOne {
	_u.mutation.ClearSynonyms()
	return _u
}

// SetTags sets the "tags" field.
func (_u *WordUpdateOne) SetTags(v []string) *WordUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *WordUpdateOne) AppendTags(v []string) *WordUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *WordUpdateOne) ClearTags() *WordUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *WordUpdateOne) SetNotes(v string) *WordUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableNotes(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *WordUpdateOne) SetMasteryLevel(v int) *WordUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableMasteryLevel(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *WordUpdateOne) AddMasteryLevel(v int) *WordUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *WordUpdateOne) SetIntervalDays(v int) *WordUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableIntervalDays(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *WordUpdateOne) AddIntervalDays(v int) *WordUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetLastReviewAt sets the "last_review_at" field.
func (_u *WordUpdateOne) SetLastReviewAt(v time.Time) *WordUpdateOne {
	_u.mutation.SetLastReviewAt(v)
	return _u
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableLastReviewAt(v *time.Time) *WordUpdateOne {
	if v != nil {
		_u.SetLastReviewAt(*v)
	}
	return _u
}

// ClearLastReviewAt clears the value of the "last_review_at" field.
func (_u *WordUpdateOne) ClearLastReviewAt() *WordUpdateOne {
	_u.mutation.ClearLastReviewAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *WordUpdateOne) SetNextReviewAt(v time.Time) *WordUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableNextReviewAt(v *time.Time) *WordUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *WordUpdateOne) ClearNextReviewAt() *WordUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *WordUpdateOne) SetAttemptCount(v int) *WordUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableAttemptCount(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *WordUpdateOne) AddAttemptCount(v int) *WordUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *WordUpdateOne) SetCorrectCount(v int) *WordUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableCorrectCount(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *WordUpdateOne) AddCorrectCount(v int) *WordUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *WordUpdateOne) SetLastScore(v int) *WordUpdateOne {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableLastScore(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *WordUpdateOne) AddLastScore(v int) *WordUpdateOne {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_u *WordUpdateOne) SetAvgResponseMs(v int) *WordUpdateOne {
	_u.mutation.ResetAvgResponseMs()
	_u.mutation.SetAvgResponseMs(v)
	return _u
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableAvgResponseMs(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetAvgResponseMs(*v)
	}
	return _u
}

// AddAvgResponseMs adds value to the "avg_response_ms" field.
func (_u *WordUpdateOne) AddAvgResponseMs(v int) *WordUpdateOne {
	_u.mutation.AddAvgResponseMs(v)
	return _u
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdateOne) Mutation() *WordMutation {
	return _u.mutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdateOne) Where(ps ...predicate.Word) *WordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WordUpdateOne) Select(field string, fields ...string) *WordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Word entity.
func (_u *WordUpdateOne) Save(ctx context.Context) (*Word, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdateOne) SaveX(ctx context.Context) *Word {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdateOne) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := word.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "Word.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Translation(); ok {
		if err := word.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Word.translation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := word.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "Word.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *WordUpdateOne) sqlSave(ctx context.Context) (_node *Word, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Word.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, word.FieldID)
		for _, f := range fields {
			if !word.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != word.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(word.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(word.FieldTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synonyms(); ok {
		_spec.SetField(word.FieldSynonyms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynonyms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldSynonyms, value)
		})
	}
	if _u.mutation.SynonymsCleared() {
		_spec.ClearField(word.FieldSynonyms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(word.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, word.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(word.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(word.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(word.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(word.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(word.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(word.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewAt(); ok {
		_spec.SetField(word.FieldLastReviewAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewAtCleared() {
		_spec.ClearField(word.FieldLastReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(word.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(word.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(word.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(word.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(word.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(word.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(word.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(word.FieldLastScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseMs(); ok {
		_spec.SetField(word.FieldAvgResponseMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseMs(); ok {
		_spec.AddField(word.FieldAvgResponseMs, field.TypeInt, value)
	}
	_node = &Word{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
