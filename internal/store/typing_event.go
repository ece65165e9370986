package store

import (
	"context"
	"fmt"

	"github.com/abhisek/wordiz/ent/typingevent"
)

func (r *eventRepo) AppendTypingEvent(ctx context.Context, data TypingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TypingEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWordID(data.WordID).
		SetWpm(data.WPM).
		SetHasWpm(data.HasWPM).
		SetElapsedMs(data.ElapsedMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save typing event: %w", err)
	}
	return nil
}

func (r *eventRepo) AverageWPM(ctx context.Context) (float64, int, error) {
	events, err := r.client.TypingEvent.Query().
		Where(typingevent.HasWpm(true)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query typing events: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for _, e := range events {
		sum += e.Wpm
	}
	return float64(sum) / float64(len(events)), len(events), nil
}
