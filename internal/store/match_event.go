package store

import (
	"context"
	"fmt"

	"github.com/abhisek/wordiz/ent"
	"github.com/abhisek/wordiz/ent/matchevent"
)

func (r *eventRepo) AppendMatchEvent(ctx context.Context, data MatchEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MatchEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetPairs(data.Pairs).
		SetMoves(data.Moves).
		SetDurationSecs(data.DurationSecs)

	if data.Category != "" {
		builder = builder.SetCategory(data.Category)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save match event: %w", err)
	}
	return nil
}

func (r *eventRepo) BestMatchMoves(ctx context.Context, pairs int) (int, error) {
	me, err := r.client.MatchEvent.Query().
		Where(matchevent.Pairs(pairs)).
		Order(ent.Asc(matchevent.FieldMoves)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query best match moves: %w", err)
	}
	return me.Moves, nil
}
