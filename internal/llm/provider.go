package llm

import (
	"context"
	"encoding/json"
)

// Provider is one model backend. The feedback generator talks to this
// interface only; which vendor sits behind it is a configuration detail.
type Provider interface {
	// Generate sends a prompt and returns the model output. When the
	// request carries a Schema the provider uses its native structured
	// output mode and Content comes back as schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Feedback is single-turn, so
	// in practice this is one user message.
	Messages []Message

	// Schema, when non-nil, constrains the output to a JSON structure.
	Schema *Schema

	// MaxTokens caps the output length.
	MaxTokens int

	// Temperature in 0.0–1.0; zero asks for deterministic output.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape expected back from the model.
type Schema struct {
	// Name is kebab-case, e.g. "encouragement". OpenAI structured output
	// requires it.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is what came back from the model.
type Response struct {
	// Content is schema-validated JSON when the request carried a
	// Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for cost accounting.
	Usage Usage

	// Model that actually served the request, after alias resolution.
	Model string

	// StopReason is normalized across vendors: "end", "max_tokens",
	// or "error".
	StopReason string
}

// Usage is the token count for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
