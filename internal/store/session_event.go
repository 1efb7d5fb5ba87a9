package store

import (
	"context"
	"fmt"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent"
	"github.com/FUJI-ZPI/FUJI-frontend-sub000/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetKind(data.Kind).
		SetAction(data.Action).
		SetItemsTotal(data.ItemsTotal).
		SetItemsCompleted(data.ItemsCompleted).
		SetAverageScore(data.AverageScore).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionSummaryRecord{
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
			SessionID:      e.SessionID,
			Kind:           e.Kind,
			ItemsTotal:     e.ItemsTotal,
			ItemsCompleted: e.ItemsCompleted,
			AverageScore:   e.AverageScore,
			DurationSecs:   e.DurationSecs,
		})
	}
	return records, nil
}
