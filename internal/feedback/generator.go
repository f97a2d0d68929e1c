package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/llm"
	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/tagging"
)

// GeneratorConfig holds configuration for the LLM feedback generator.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGeneratorConfig returns sensible defaults. A little temperature
// keeps repeated encouragement from sounding robotic.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   128,
		Temperature: 0.7,
	}
}

// Generator produces encouragement text with an LLM, conditioned on the
// attempt's error tags.
type Generator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

// NewGenerator creates an LLM-backed feedback generator.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// encouragementOutput is the raw LLM response.
type encouragementOutput struct {
	Encouragement string `json:"encouragement"`
}

// Feedback asks the LLM for an encouragement line. Implements TextProvider.
func (g *Generator) Feedback(ctx context.Context, a *Attempt) (string, error) {
	ctx = llm.WithPurpose(ctx, "feedback")

	userMsg, err := buildFeedbackMessage(a)
	if err != nil {
		return "", fmt.Errorf("build feedback prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      EncouragementSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("LLM feedback failed: %w", err)
	}

	var raw encouragementOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", fmt.Errorf("parse feedback response: %w", err)
	}

	text := strings.TrimSpace(raw.Encouragement)
	if text == "" {
		return "", fmt.Errorf("LLM returned empty encouragement")
	}

	return text, nil
}

const feedbackSystemPrompt = `You write one-line encouragement for a child (age 6-8) practicing addition facts.

Instructions:
- Warm, upbeat, specific to the mistake described. Never scold.
- One or two short sentences, simple words, no emoji.
- If the answer was correct, celebrate briefly.
- If error patterns are listed, gently point toward the right strategy without lecturing.
- Never reveal the correct answer outright; nudge the child to find it.`

var feedbackUserTemplate = template.Must(template.New("feedback").Parse(`Question: {{.QuestionText}}
Child's answer: {{.UserAnswer}}
Correct answer: {{.CorrectAnswer}}
{{if .Correct}}The answer was correct.
{{else if .Tags}}Error patterns: {{range $i, $t := .Tags}}{{if $i}}, {{end}}{{$t}}{{end}}
{{else}}The answer was wrong but matched no known error pattern.
{{end}}`))

func buildFeedbackMessage(a *Attempt) (string, error) {
	var buf bytes.Buffer
	data := struct {
		QuestionText  string
		UserAnswer    int
		CorrectAnswer int
		Correct       bool
		Tags          []string
	}{
		QuestionText:  a.QuestionText,
		UserAnswer:    a.UserAnswer,
		CorrectAnswer: a.CorrectAnswer,
		Correct:       a.Correct(),
		Tags:          tagging.Strings(a.Tags),
	}
	if err := feedbackUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
