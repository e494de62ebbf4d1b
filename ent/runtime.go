// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ekuzmin/vokab/ent/attemptevent"
	"github.com/ekuzmin/vokab/ent/hintevent"
	"github.com/ekuzmin/vokab/ent/llmrequestevent"
	"github.com/ekuzmin/vokab/ent/schema"
	"github.com/ekuzmin/vokab/ent/sessionevent"
	"github.com/ekuzmin/vokab/ent/word"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescTerm is the schema descriptor for term field.
	attempteventDescTerm := attempteventFields[2].Descriptor()
	// attemptevent.TermValidator is a validator for the "term" field. It is called by the builders before save.
	attemptevent.TermValidator = attempteventDescTerm.Validators[0].(func(string) error)
	// attempteventDescMode is the schema descriptor for mode field.
	attempteventDescMode := attempteventFields[3].Descriptor()
	// attemptevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	attemptevent.ModeValidator = attempteventDescMode.Validators[0].(func(string) error)
	// attempteventDescSessionType is the schema descriptor for session_type field.
	attempteventDescSessionType := attempteventFields[4].Descriptor()
	// attemptevent.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	attemptevent.SessionTypeValidator = attempteventDescSessionType.Validators[0].(func(string) error)
	// attempteventDescDirection is the schema descriptor for direction field.
	attempteventDescDirection := attempteventFields[5].Descriptor()
	// attemptevent.DirectionValidator is a validator for the "direction" field. It is called by the builders before save.
	attemptevent.DirectionValidator = attempteventDescDirection.Validators[0].(func(string) error)
	// attempteventDescLearnerAnswer is the schema descriptor for learner_answer field.
	attempteventDescLearnerAnswer := attempteventFields[6].Descriptor()
	// attemptevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	attemptevent.DefaultLearnerAnswer = attempteventDescLearnerAnswer.Default.(string)
	// attempteventDescReason is the schema descriptor for reason field.
	attempteventDescReason := attempteventFields[8].Descriptor()
	// attemptevent.DefaultReason holds the default value on creation for the reason field.
	attemptevent.DefaultReason = attempteventDescReason.Default.(string)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescKind is the schema descriptor for kind field.
	hinteventDescKind := hinteventFields[2].Descriptor()
	// hintevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	hintevent.KindValidator = hinteventDescKind.Validators[0].(func(string) error)
	// hinteventDescContent is the schema descriptor for content field.
	hinteventDescContent := hinteventFields[3].Descriptor()
	// hintevent.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	hintevent.ContentValidator = hinteventDescContent.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[3].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescSessionType is the schema descriptor for session_type field.
	sessioneventDescSessionType := sessioneventFields[4].Descriptor()
	// sessionevent.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	sessionevent.SessionTypeValidator = sessioneventDescSessionType.Validators[0].(func(string) error)
	// sessioneventDescTotalItems is the schema descriptor for total_items field.
	sessioneventDescTotalItems := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultTotalItems holds the default value on creation for the total_items field.
	sessionevent.DefaultTotalItems = sessioneventDescTotalItems.Default.(int)
	// sessioneventDescCompletedItems is the schema descriptor for completed_items field.
	sessioneventDescCompletedItems := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCompletedItems holds the default value on creation for the completed_items field.
	sessionevent.DefaultCompletedItems = sessioneventDescCompletedItems.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescTerm is the schema descriptor for term field.
	wordDescTerm := wordFields[0].Descriptor()
	// word.TermValidator is a validator for the "term" field. It is called by the builders before save.
	word.TermValidator = wordDescTerm.Validators[0].(func(string) error)
	// wordDescTranslation is the schema descriptor for translation field.
	wordDescTranslation := wordFields[1].Descriptor()
	// word.TranslationValidator is a validator for the "translation" field. It is called by the builders before save.
	word.TranslationValidator = wordDescTranslation.Validators[0].(func(string) error)
	// wordDescNotes is the schema descriptor for notes field.
	wordDescNotes := wordFields[4].Descriptor()
	// word.DefaultNotes holds the default value on creation for the notes field.
	word.DefaultNotes = wordDescNotes.Default.(string)
	// wordDescMasteryLevel is the schema descriptor for mastery_level field.
	wordDescMasteryLevel := wordFields[5].Descriptor()
	// word.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	word.DefaultMasteryLevel = wordDescMasteryLevel.Default.(int)
	// word.MasteryLevelValidator is a validator for the "mastery_level" field. It is called by the builders before save.
	word.MasteryLevelValidator = func() func(int) error {
		validators := wordDescMasteryLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery_level int) error {
			for _, fn := range fns {
				if err := fn(mastery_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// wordDescIntervalDays is the schema descriptor for interval_days field.
	wordDescIntervalDays := wordFields[6].Descriptor()
	// word.DefaultIntervalDays holds the default value on creation for the interval_days field.
	word.DefaultIntervalDays = wordDescIntervalDays.Default.(int)
	// wordDescAttemptCount is the schema descriptor for attempt_count field.
	wordDescAttemptCount := wordFields[9].Descriptor()
	// word.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	word.DefaultAttemptCount = wordDescAttemptCount.Default.(int)
	// wordDescCorrectCount is the schema descriptor for correct_count field.
	wordDescCorrectCount := wordFields[10].Descriptor()
	// word.DefaultCorrectCount holds the default value on creation for the correct_count field.
	word.DefaultCorrectCount = wordDescCorrectCount.Default.(int)
	// wordDescLastScore is the schema descriptor for last_score field.
	wordDescLastScore := wordFields[11].Descriptor()
	// word.DefaultLastScore holds the default value on creation for the last_score field.
	word.DefaultLastScore = wordDescLastScore.Default.(int)
	// wordDescAvgResponseMs is the schema descriptor for avg_response_ms field.
	wordDescAvgResponseMs := wordFields[12].Descriptor()
	// word.DefaultAvgResponseMs holds the default value on creation for the avg_response_ms field.
	word.DefaultAvgResponseMs = wordDescAvgResponseMs.Default.(int)
	// wordDescCreatedAt is the schema descriptor for created_at field.
	wordDescCreatedAt := wordFields[13].Descriptor()
	// word.DefaultCreatedAt holds the default value on creation for the created_at field.
	word.DefaultCreatedAt = wordDescCreatedAt.Default.(func() time.Time)
}
