package summarizer

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"news-digest/internal/domain/ports"
)

// Throttled paces calls to the wrapped summarizer.
type Throttled struct {
	next    ports.Summarizer
	limiter *rate.Limiter
}

var _ ports.Summarizer = (*Throttled)(nil)

// WithRateLimit wraps s so that at most rps calls per second are made.
// A non-positive rps returns s unchanged.
func WithRateLimit(s ports.Summarizer, rps float64) ports.Summarizer {
	if s == nil || rps <= 0 {
		return s
	}
	return &Throttled{next: s, limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Summarize waits for a token, then delegates.
func (t *Throttled) Summarize(ctx context.Context, text string) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("summarizer rate limit: %w", err)
	}
	return t.next.Summarize(ctx, text)
}
