package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/llm"
	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
)

func TestGenerator_PromptIncludesAttemptContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"Nice try!"}`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.Feedback(context.Background(), wrongAttempt())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]

	if req.Schema == nil || req.Schema.Name != "encouragement" {
		t.Errorf("request missing encouragement schema: %+v", req.Schema)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"8 + 5", "12", "13", "complement_miss", "off_by_one"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerator_CorrectAttemptPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"You did it!"}`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	a := &Attempt{QuestionText: "5 + 5", UserAnswer: 10, CorrectAnswer: 10}
	text, err := g.Feedback(context.Background(), a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "You did it!" {
		t.Errorf("text = %q", text)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "correct") {
		t.Errorf("prompt for a correct attempt should say so:\n%s", prompt)
	}
}

func TestGenerator_EmptyEncouragementIsError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"   "}`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.Feedback(context.Background(), wrongAttempt())
	if err == nil {
		t.Fatal("expected error for blank encouragement")
	}
}

func TestGenerator_MalformedResponseIsError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.Feedback(context.Background(), wrongAttempt())
	if err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestGenerator_WhitespaceTrimmed(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"  Great effort!\n"}`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	text, err := g.Feedback(context.Background(), &Attempt{
		QuestionText:  "6 + 7",
		UserAnswer:    12,
		CorrectAnswer: 13,
		Tags:          []tagging.Tag{tagging.TagNearDoubleWrongBase},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Great effort!" {
		t.Errorf("text = %q, want trimmed", text)
	}
}

func TestGenerator_UntaggedWrongPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"Keep going!"}`)},
	)
	g := NewGenerator(mock, DefaultGeneratorConfig())

	a := &Attempt{QuestionText: "4 + 2", UserAnswer: 8, CorrectAnswer: 6}
	_, err := g.Feedback(context.Background(), a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "was correct") {
		t.Errorf("prompt claims a wrong answer was correct:\n%s", prompt)
	}
	if !strings.Contains(prompt, "no known error pattern") {
		t.Errorf("prompt should flag the unmatched wrong answer:\n%s", prompt)
	}
}
