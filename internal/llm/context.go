package llm

import "context"

// Purpose labels recorded with each request event, so `fuji llm stats`
// can split spend between the chat tutor and kanji card generation.
const (
	PurposeChat    = "chat"
	PurposeExplain = "explain"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, "unknown" when absent.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
