package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/raptors2019-ai/math-tutor-2-sub000/internal/store"
)

// eventLogProvider appends one LLMRequestEvent per Generate call, success
// or failure, so `mathtutor llm list` and `llm stats` can account for
// every token spent on feedback.
type eventLogProvider struct {
	next   Provider
	events store.EventRepo
}

// WithLogging wraps a Provider so every request is recorded as an event.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &eventLogProvider{next: p, events: repo}
}

func (l *eventLogProvider) ModelID() string { return l.next.ModelID() }

func (l *eventLogProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	started := time.Now()
	resp, err := l.next.Generate(ctx, req)

	event := store.LLMRequestEventData{
		Provider:    l.next.ModelID(),
		Model:       l.next.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(started).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderTranscript(req),
	}
	switch {
	case resp != nil:
		event.Model = resp.Model
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.ResponseBody = string(resp.Content)
	case err != nil:
		event.ErrorMessage = err.Error()
	}

	// A failed append must not take the feedback request down with it.
	if appendErr := l.events.AppendLLMRequest(ctx, event); appendErr != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record llm event: %v\n", appendErr)
	}

	return resp, err
}

// renderTranscript flattens a request into the text stored in the event
// log and shown by `mathtutor llm view`.
func renderTranscript(req Request) string {
	var b strings.Builder

	writeSection := func(label, body string) {
		b.WriteString(label)
		b.WriteString(":\n")
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	if req.System != "" {
		writeSection("system", req.System)
	}
	for _, m := range req.Messages {
		writeSection(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			writeSection("schema "+req.Schema.Name, string(def))
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
