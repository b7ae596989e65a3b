// Package feeds provides an RSS/Atom backed article provider.
package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"news-digest/internal/adapter/textclean"
	"news-digest/internal/domain/model"
	"news-digest/internal/domain/ports"
)

// Provider reads articles from a list of feeds, using the first one that yields items.
type Provider struct {
	urls   []string
	parser *gofeed.Parser
	logger ports.Logger
}

var _ ports.ArticleProvider = (*Provider)(nil)

// NewProvider builds a feed provider for the given feed URLs.
func NewProvider(urls []string, timeout time.Duration, logger ports.Logger) *Provider {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = "news-digest/1.0"

	clean := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			clean = append(clean, u)
		}
	}

	return &Provider{urls: clean, parser: parser, logger: logger}
}

// FetchArticles returns up to query.Limit items of the first feed that parses and is non-empty.
// The query term and filters are not applied; feeds are curated by configuration.
func (p *Provider) FetchArticles(ctx context.Context, query model.Query) ([]model.Article, error) {
	if len(p.urls) == 0 {
		return nil, fmt.Errorf("no feeds configured: %w", model.ErrEmptyResult)
	}

	var lastErr error
	for _, url := range p.urls {
		feed, err := p.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			lastErr = fmt.Errorf("parse feed %s: %w", url, err)
			if p.logger != nil {
				p.logger.Warn(ctx, "feed failed", "url", url, "error", err)
			}
			continue
		}

		articles := toArticles(feed.Items, query.EffectiveLimit())
		if len(articles) == 0 {
			lastErr = fmt.Errorf("feed %s: %w", url, model.ErrEmptyResult)
			continue
		}

		if p.logger != nil {
			p.logger.Info(ctx, "loaded articles from feed", "url", url, "count", len(articles))
		}
		return articles, nil
	}

	return nil, lastErr
}

func toArticles(items []*gofeed.Item, limit int) []model.Article {
	articles := make([]model.Article, 0, min(len(items), limit))
	for _, item := range items {
		if len(articles) >= limit {
			break
		}
		if item == nil {
			continue
		}
		articles = append(articles, model.NewArticle(
			textclean.PlainText(item.Title),
			textclean.PlainText(item.Description),
			strings.TrimSpace(item.Link),
		))
	}
	return articles
}
