package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/llm"
	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
)

func wrongAttempt() *Attempt {
	return &Attempt{
		QuestionText:  "8 + 5",
		UserAnswer:    12,
		CorrectAnswer: 13,
		Tags:          []tagging.Tag{tagging.TagComplementMiss, tagging.TagOffByOne},
	}
}

func TestService_LLMSuccess(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"So close! Try making 10 first."}`)},
	)
	s := NewService(mock, NewBoundedCache(10))

	res := s.Feedback(context.Background(), wrongAttempt())
	if res.Source != SourceLLM {
		t.Errorf("source = %s, want llm", res.Source)
	}
	if res.Text != "So close! Try making 10 first." {
		t.Errorf("text = %q", res.Text)
	}
}

func TestService_CacheHitSkipsLLM(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"First call."}`)},
	)
	s := NewService(mock, NewBoundedCache(10))
	ctx := context.Background()

	first := s.Feedback(ctx, wrongAttempt())
	if first.Source != SourceLLM {
		t.Fatalf("first source = %s, want llm", first.Source)
	}

	second := s.Feedback(ctx, wrongAttempt())
	if second.Source != SourceCache {
		t.Errorf("second source = %s, want cache", second.Source)
	}
	if second.Text != first.Text {
		t.Errorf("cache returned %q, want %q", second.Text, first.Text)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1", mock.CallCount())
	}
}

func TestService_TemplateFallbackOnLLMError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewService(mock, NewBoundedCache(10))

	res := s.Feedback(context.Background(), wrongAttempt())
	if res.Source != SourceTemplate {
		t.Errorf("source = %s, want template", res.Source)
	}
	if res.Text != tagTemplates[tagging.TagComplementMiss] {
		t.Errorf("text = %q, want the complement_miss template", res.Text)
	}
}

func TestService_FailedGenerationNotCached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"Back online!"}`)},
	)
	cache := NewBoundedCache(10)
	s := NewService(mock, cache)
	ctx := context.Background()

	if res := s.Feedback(ctx, wrongAttempt()); res.Source != SourceTemplate {
		t.Fatalf("first source = %s, want template", res.Source)
	}
	if cache.Len() != 0 {
		t.Fatalf("template fallback must not be cached, Len = %d", cache.Len())
	}

	if res := s.Feedback(ctx, wrongAttempt()); res.Source != SourceLLM {
		t.Errorf("second source = %s, want llm (retry after fallback)", res.Source)
	}
}

func TestService_NilProviderUsesTemplates(t *testing.T) {
	s := NewService(nil, nil)

	res := s.Feedback(context.Background(), wrongAttempt())
	if res.Source != SourceTemplate {
		t.Errorf("source = %s, want template", res.Source)
	}
	if res.Text == "" {
		t.Error("empty text")
	}
}

func TestService_NilCache(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"One."}`)},
		llm.MockResponse{Content: json.RawMessage(`{"encouragement":"Two."}`)},
	)
	s := NewService(mock, nil)
	ctx := context.Background()

	s.Feedback(ctx, wrongAttempt())
	s.Feedback(ctx, wrongAttempt())
	if mock.CallCount() != 2 {
		t.Errorf("LLM called %d times, want 2 (no cache)", mock.CallCount())
	}
}
