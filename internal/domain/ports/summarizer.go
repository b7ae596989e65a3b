package ports

import "context"

// Summarizer turns article text into a short generated summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
