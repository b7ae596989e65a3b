package ports

import (
	"context"

	"news-digest/internal/domain/model"
)

// ArticleProvider fetches news articles matching a query.
// Implementations return either the full result or an error, never a partial list.
type ArticleProvider interface {
	FetchArticles(ctx context.Context, query model.Query) ([]model.Article, error)
}
