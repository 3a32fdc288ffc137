package business

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithBusiness adds the resolved business to the context.
func WithBusiness(ctx context.Context, b *Business) context.Context {
	return context.WithValue(ctx, contextKey{}, b)
}

// FromContext retrieves the resolved business from the context.
func FromContext(ctx context.Context) (*Business, bool) {
	b, ok := ctx.Value(contextKey{}).(*Business)
	return b, ok
}

// IDFromContext retrieves just the business ID from the context.
func IDFromContext(ctx context.Context) (string, bool) {
	b, ok := FromContext(ctx)
	if !ok || b == nil {
		return "", false
	}
	return b.ID, true
}

// LoggerExtractor returns a context extractor for the logger that attaches
// the resolved business ID to every record.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("business_id", id), true
		}
		return slog.Attr{}, false
	}
}
