// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ekuzmin/vokab/ent/word"
)

// WordCreate is the builder for creating a Word entity.
type WordCreate struct {
	config
	mutation *WordMutation
	hooks    []Hook
}

// SetTerm sets the "term" field.
func (_c *WordCreate) SetTerm(v string) *WordCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetTranslation sets the "translation" field.
func (_c *WordCreate) SetTranslation(v string) *WordCreate {
	_c.mutation.SetTranslation(v)
	return _c
}

// SetSynonyms sets the "synonyms" field.
func (_c *WordCreate) SetSynonyms(v []string) *WordCreate {
	_c.mutation.SetSynonyms(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *WordCreate) SetTags(v []string) *WordCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *WordCreate) SetNotes(v string) *WordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *WordCreate) SetNillableNotes(v *string) *WordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *WordCreate) SetMasteryLevel(v int) *WordCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *WordCreate) SetNillableMasteryLevel(v *int) *WordCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *WordCreate) SetIntervalDays(v int) *WordCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *WordCreate) SetNillableIntervalDays(v *int) *WordCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetLastReviewAt sets the "last_review_at" field.
func (_c *WordCreate) SetLastReviewAt(v time.Time) *WordCreate {
	_c.mutation.SetLastReviewAt(v)
	return _c
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (_c *WordCreate) SetNillableLastReviewAt(v *time.Time) *WordCreate {
	if v != nil {
		_c.SetLastReviewAt(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *WordCreate) SetNextReviewAt(v time.Time) *WordCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *WordCreate) SetNillableNextReviewAt(v *time.Time) *WordCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *WordCreate) SetAttemptCount(v int) *WordCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *WordCreate) SetNillableAttemptCount(v *int) *WordCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *WordCreate) SetCorrectCount(v int) *WordCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *WordCreate) SetNillableCorrectCount(v *int) *WordCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetLastScore sets the "last_score" field.
func (_c *WordCreate) SetLastScore(v int) *WordCreate {
	_c.mutation.SetLastScore(v)
	return _c
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_c *WordCreate) SetNillableLastScore(v *int) *WordCreate {
	if v != nil {
		_c.SetLastScore(*v)
	}
	return _c
}

// SetAvgResponseMs sets the "avg_response_ms" field.
func (_c *WordCreate) SetAvgResponseMs(v int) *WordCreate {
	_c.mutation.SetAvgResponseMs(v)
	return _c
}

// SetNillableAvgResponseMs sets the "avg_response_ms" field if the given value is not nil.
func (_c *WordCreate) SetNillableAvgResponseMs(v *int) *WordCreate {
	if v != nil {
		_c.SetAvgResponseMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WordCreate) SetCreatedAt(v time.Time) *WordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WordCreate) SetNillableCreatedAt(v *time.Time) *WordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the WordMutation object of the builder.
func (_c *WordCreate) Mutation() *WordMutation {
	return _c.mutation
}

// Save creates the Word in the database.
func (_c *WordCreate) Save(ctx context.Context) (*Word, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WordCreate) SaveX(ctx context.Context) *Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WordCreate) defaults() {
	if _, ok := _c.mutation.Notes(); !ok {
		v := word.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := word.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := word.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := word.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := word.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		v := word.DefaultLastScore
		_c.mutation.SetLastScore(v)
	}
	if _, ok := _c.mutation.AvgResponseMs(); !ok {
		v := word.DefaultAvgResponseMs
		_c.mutation.SetAvgResponseMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := word.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WordCreate) check() error {
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "Word.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := word.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "Word.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "Word.translation"`)}
	}
	if v, ok := _c.mutation.Translation(); ok {
		if err := word.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "Word.translation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "Word.notes"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "Word.mastery_level"`)}
	}
	if v, ok := _c.mutation.MasteryLevel(); ok {
		if err := word.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "Word.mastery_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Word.interval_days"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "Word.attempt_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "Word.correct_count"`)}
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		return &ValidationError{Name: "last_score", err: errors.New(`ent: missing required field "Word.last_score"`)}
	}
	if _, ok := _c.mutation.AvgResponseMs(); !ok {
		return &ValidationError{Name: "avg_response_ms", err: errors.New(`ent: missing required field "Word.avg_response_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Word.created_at"`)}
	}
	return nil
}

func (_c *WordCreate) sqlSave(ctx context.Context) (*Word, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WordCreate) createSpec() (*Word, *sqlgraph.CreateSpec) {
	var (
		_node = &Word{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(word.Table, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(word.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Translation(); ok {
		_spec.SetField(word.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := _c.mutation.Synonyms(); ok {
		_spec.SetField(word.FieldSynonyms, field.TypeJSON, value)
		_node.Synonyms = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(word.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(word.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(word.FieldMasteryLevel, field.TypeInt, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(word.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.LastReviewAt(); ok {
		_spec.SetField(word.FieldLastReviewAt, field.TypeTime, value)
		_node.LastReviewAt = &value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(word.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(word.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(word.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.LastScore(); ok {
		_spec.SetField(word.FieldLastScore, field.TypeInt, value)
		_node.LastScore = value
	}
	if value, ok := _c.mutation.AvgResponseMs(); ok {
		_spec.SetField(word.FieldAvgResponseMs, field.TypeInt, value)
		_node.AvgResponseMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(word.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WordCreateBulk is the builder for creating many Word entities in bulk.
type WordCreateBulk struct {
	config
	err      error
	builders []*WordCreate
}

// Save creates the Word entities in the database.
func (_c *WordCreateBulk) Save(ctx context.Context) ([]*Word, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Word, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WordCreateBulk) SaveX(ctx context.Context) []*Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
