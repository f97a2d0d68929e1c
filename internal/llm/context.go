package llm

import "context"

type purposeContextKey struct{}

// WithPurpose labels the context so the event log can attribute the
// request ("feedback" is the only purpose this tool issues today).
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeContextKey{}, purpose)
}

// PurposeFrom reads the purpose label back, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if purpose, ok := ctx.Value(purposeContextKey{}).(string); ok {
		return purpose
	}
	return "unknown"
}
