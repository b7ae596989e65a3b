package ports

import "context"

// DigestStore persists a rendered digest, replacing any previous one.
type DigestStore interface {
	Save(ctx context.Context, content string) error
}
