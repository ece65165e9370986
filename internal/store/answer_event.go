package store

import (
	"context"
	"fmt"

	"github.com/abhisek/wordiz/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWordID(data.WordID).
		SetMode(data.Mode).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs)

	if data.Category != "" {
		builder = builder.SetCategory(data.Category)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) WordAccuracy(ctx context.Context, wordID string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.WordID(wordID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query word accuracy: %w", err)
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

func (r *eventRepo) CorrectCounts(ctx context.Context) (total, quiz int, err error) {
	total, err = r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct answers: %w", err)
	}

	quiz, err = r.client.AnswerEvent.Query().
		Where(
			answerevent.Correct(true),
			answerevent.Mode("quiz"),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count quiz answers: %w", err)
	}
	return total, quiz, nil
}
