package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{
			SessionID:     "s1",
			QuestionText:  "8 + 5",
			UserAnswer:    12,
			CorrectAnswer: 13,
			Correct:       false,
			Tags:          []string{"complement_miss", "off_by_one"},
			Severity:      "moderate",
			Strategy:      "basic-addition",
		},
		{
			SessionID:     "s1",
			QuestionText:  "5 + 5",
			UserAnswer:    10,
			CorrectAnswer: 10,
			Correct:       true,
			Severity:      "minor",
			Strategy:      "doubles",
		},
	}
	for _, e := range events {
		if err := repo.AppendAnswer(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.QueryAnswers(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].QuestionText != "5 + 5" {
		t.Errorf("first record = %q, want newest (5 + 5)", records[0].QuestionText)
	}
	if records[0].Tags != nil {
		t.Errorf("correct answer stored tags %v, want none", records[0].Tags)
	}
	if got := records[1].Tags; len(got) != 2 || got[0] != "complement_miss" || got[1] != "off_by_one" {
		t.Errorf("tags round-trip = %v", got)
	}
	if records[1].Sequence >= records[0].Sequence {
		t.Errorf("sequence not increasing: %d then %d", records[1].Sequence, records[0].Sequence)
	}
}

func TestQueryAnswersLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 5 {
		err := repo.AppendAnswer(ctx, AnswerEventData{
			SessionID:     "s1",
			QuestionText:  "2 + 2",
			UserAnswer:    4,
			CorrectAnswer: 4,
			Correct:       true,
			Severity:      "minor",
			Strategy:      "doubles",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.QueryAnswers(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestAppendFeedback(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendFeedback(ctx, FeedbackEventData{
		SessionID:    "s1",
		QuestionText: "8 + 5",
		Tags:         []string{"complement_miss"},
		Source:       "template",
		Text:         "So close! You made 10 — now add the rest.",
	})
	if err != nil {
		t.Fatalf("append feedback: %v", err)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "feedback",
		InputTokens:  100,
		OutputTokens: 20,
		LatencyMs:    42,
		Success:      true,
		RequestBody:  "[user]\n8 + 5",
		ResponseBody: `{"encouragement":"Nice try!"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Purpose != "feedback" || records[0].LatencyMs != 42 {
		t.Errorf("record mismatch: %+v", records[0])
	}

	got, err := repo.GetLLMEvent(ctx, records[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != `{"encouragement":"Nice try!"}` {
		t.Errorf("get mismatch: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 10 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence %d not greater than %d", seq, prev)
		}
		prev = seq
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "mock", Model: "mock-model", Purpose: "feedback", InputTokens: 100, OutputTokens: 20, LatencyMs: 10, Success: true},
		{Provider: "mock", Model: "mock-model", Purpose: "feedback", InputTokens: 200, OutputTokens: 40, LatencyMs: 30, Success: true},
		{Provider: "mock", Model: "other-model", Purpose: "diagnosis", InputTokens: 50, OutputTokens: 5, LatencyMs: 20, Success: true},
	}
	for _, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose groups, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "feedback" {
			if u.Calls != 2 || u.InputTokens != 300 || u.OutputTokens != 60 {
				t.Errorf("feedback usage mismatch: %+v", u)
			}
			if u.AvgLatencyMs != 20 {
				t.Errorf("avg latency = %d, want 20", u.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d model groups, want 2", len(byModel))
	}
	for _, u := range byModel {
		if u.Model == "mock-model" && u.Calls != 2 {
			t.Errorf("mock-model calls = %d, want 2", u.Calls)
		}
	}
}
