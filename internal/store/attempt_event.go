package store

import (
	"context"
	"fmt"

	"github.com/ekuzmin/vokab/ent"
	"github.com/ekuzmin/vokab/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWordID(data.WordID).
		SetTerm(data.Term).
		SetMode(data.Mode).
		SetSessionType(data.SessionType).
		SetDirection(data.Direction).
		SetLearnerAnswer(data.LearnerAnswer).
		SetScore(data.Score).
		SetReason(data.Reason).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAccuracy(ctx context.Context, limit int) (float64, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query recent accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
