package feedback

import (
	"context"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/llm"
)

// Source identifies where a feedback line came from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceLLM      Source = "llm"
	SourceTemplate Source = "template"
)

// Result is a feedback line plus its provenance.
type Result struct {
	Text   string
	Source Source
}

// Service layers the feedback providers: injected cache first, then the
// LLM generator, then the template fallback. It can never fail to produce
// text — every tag in the vocabulary has a template behind it.
type Service struct {
	generator *Generator
	templates *TemplateProvider
	cache     Cache
}

// NewService creates a feedback service. provider may be nil, in which case
// only templates are used. cache may be nil to disable caching.
func NewService(provider llm.Provider, cache Cache) *Service {
	s := &Service{
		templates: NewTemplateProvider(),
		cache:     cache,
	}
	if provider != nil {
		s.generator = NewGenerator(provider, DefaultGeneratorConfig())
	}
	return s
}

// Feedback returns an encouragement line for the attempt.
func (s *Service) Feedback(ctx context.Context, a *Attempt) Result {
	key := CacheKey(a.QuestionText, a.Tags)

	if s.cache != nil {
		if text, ok := s.cache.Get(key); ok {
			return Result{Text: text, Source: SourceCache}
		}
	}

	if s.generator != nil {
		text, err := s.generator.Feedback(ctx, a)
		if err == nil {
			if s.cache != nil {
				s.cache.Put(key, text)
			}
			return Result{Text: text, Source: SourceLLM}
		}
		// Fall through to templates on any generator error.
	}

	text, _ := s.templates.Feedback(ctx, a)
	return Result{Text: text, Source: SourceTemplate}
}
