package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendFeedback(ctx context.Context, data FeedbackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FeedbackEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionText(data.QuestionText).
		SetTags(joinTags(data.Tags)).
		SetSource(data.Source).
		SetText(data.Text).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save feedback event: %w", err)
	}
	return nil
}
