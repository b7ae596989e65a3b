package articles

import (
	"context"
	"fmt"

	"news-digest/internal/domain/model"
	"news-digest/internal/domain/ports"
)

// CompositeProvider asks providers in order and returns the first non-empty answer whole.
// Results are never merged, so the output keeps the response order of a single source.
type CompositeProvider struct {
	logger    ports.Logger
	providers []ports.ArticleProvider
}

var _ ports.ArticleProvider = (*CompositeProvider)(nil)

// NewCompositeProvider constructs a provider that queries the given providers sequentially.
func NewCompositeProvider(logger ports.Logger, providers ...ports.ArticleProvider) *CompositeProvider {
	active := make([]ports.ArticleProvider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &CompositeProvider{
		logger:    logger,
		providers: active,
	}
}

// FetchArticles returns the articles of the first provider that succeeds with at least one item.
func (c *CompositeProvider) FetchArticles(ctx context.Context, query model.Query) ([]model.Article, error) {
	var firstErr error

	for idx, provider := range c.providers {
		items, err := provider.FetchArticles(ctx, query)
		if err == nil && len(items) == 0 {
			err = model.ErrEmptyResult
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if c.logger != nil {
				c.logger.Warn(ctx, "article provider failed", "provider", idx, "error", err)
			}
			continue
		}

		if idx > 0 && c.logger != nil {
			c.logger.Info(ctx, "fallback provider succeeded", "provider", idx, "count", len(items))
		}
		return items, nil
	}

	if firstErr == nil {
		firstErr = fmt.Errorf("no article providers configured: %w", model.ErrEmptyResult)
	}
	return nil, firstErr
}
