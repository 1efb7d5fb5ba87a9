package store

import (
	"context"
	"fmt"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCharacterUUID(data.CharacterUUID).
		SetCharacter(data.Character).
		SetKind(data.Kind).
		SetScore(data.Score).
		SetStrokeCount(data.StrokeCount).
		SetMismatch(data.Mismatch).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptEventRecord, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:     e.SessionID,
				CharacterUUID: e.CharacterUUID,
				Character:     e.Character,
				Kind:          e.Kind,
				Score:         e.Score,
				StrokeCount:   e.StrokeCount,
				Mismatch:      e.Mismatch,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) AverageScore(ctx context.Context, kind string, lastN int) (float64, int, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if kind != "" {
		q = q.Where(attemptevent.Kind(kind))
	}
	if lastN > 0 {
		q = q.Limit(lastN)
	}

	events, err := q.All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query average score: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	total := 0
	for _, e := range events {
		total += e.Score
	}
	return float64(total) / float64(len(events)), len(events), nil
}
