package feedback

import "github.com/raptors2019-ai/math-tutor-2-sub000/internal/llm"

// EncouragementSchema defines the JSON schema for LLM feedback responses.
var EncouragementSchema = &llm.Schema{
	Name:        "encouragement",
	Description: "A short, kid-friendly encouragement line for a math practice answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"encouragement": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "One or two short sentences of warm, specific encouragement",
			},
		},
		"required":             []any{"encouragement"},
		"additionalProperties": false,
	},
}
