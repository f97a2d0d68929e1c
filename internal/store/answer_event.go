package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/raptors2019-ai/math-tutor-2-sub000/ent"
	"github.com/raptors2019-ai/math-tutor-2-sub000/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionText(data.QuestionText).
		SetUserAnswer(data.UserAnswer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		SetTags(joinTags(data.Tags)).
		SetSeverity(data.Severity).
		SetStrategy(data.Strategy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerRecord, error) {
	query := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(answerevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(answerevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(answerevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(answerevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	records := make([]AnswerRecord, len(events))
	for i, e := range events {
		records[i] = AnswerRecord{
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			SessionID:     e.SessionID,
			QuestionText:  e.QuestionText,
			UserAnswer:    e.UserAnswer,
			CorrectAnswer: e.CorrectAnswer,
			Correct:       e.Correct,
			Tags:          splitTags(e.Tags),
			Severity:      e.Severity,
			Strategy:      e.Strategy,
		}
	}
	return records, nil
}

// joinTags flattens a tag list for the single-column representation.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// splitTags inverts joinTags. An empty column means no tags.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
