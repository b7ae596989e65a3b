package usecase

import (
	"context"
	"fmt"
	"time"

	"news-digest/internal/domain/model"
	"news-digest/internal/domain/ports"
)

// DigestBuilder fetches articles, optionally summarizes them, renders the digest and stores it.
type DigestBuilder struct {
	articles   ports.ArticleProvider
	summarizer ports.Summarizer
	store      ports.DigestStore
	logger     ports.Logger
	query      model.Query
	title      string
	location   *time.Location
	now        func() time.Time
}

// DigestConfig controls what the builder asks for and how it stamps the output.
type DigestConfig struct {
	Query    model.Query
	Title    string
	Location *time.Location
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// NewDigestBuilder constructs a DigestBuilder. A nil summarizer disables summarization.
func NewDigestBuilder(
	articles ports.ArticleProvider,
	summarizer ports.Summarizer,
	store ports.DigestStore,
	logger ports.Logger,
	cfg DigestConfig,
) *DigestBuilder {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &DigestBuilder{
		articles:   articles,
		summarizer: summarizer,
		store:      store,
		logger:     logger,
		query:      cfg.Query,
		title:      cfg.Title,
		location:   loc,
		now:        now,
	}
}

// Run executes one digest: fetch, summarize, render, persist.
// Fetch and summarize failures degrade the output; only a failed write is returned.
func (d *DigestBuilder) Run(ctx context.Context) error {
	start := time.Now()
	d.logger.Info(ctx, "starting digest", "query", d.query.Term, "limit", d.query.EffectiveLimit())

	articles := d.Fetch(ctx)
	articles = d.Summarize(ctx, articles)

	content := Render(model.Digest{
		Title:       d.title,
		Articles:    articles,
		GeneratedAt: d.now(),
		Location:    d.location,
	})

	if err := d.store.Save(ctx, content); err != nil {
		d.logger.Error(ctx, "failed to write digest", "error", err)
		return fmt.Errorf("persist digest: %w", err)
	}

	d.logger.Info(ctx, "digest updated", "articles", len(articles), "duration", time.Since(start))
	return nil
}

// Fetch returns the provider's articles, or an empty slice if the provider fails.
func (d *DigestBuilder) Fetch(ctx context.Context) []model.Article {
	if d.articles == nil {
		return nil
	}

	articles, err := d.articles.FetchArticles(ctx, d.query)
	if err != nil {
		d.logger.Error(ctx, "failed to fetch news", "error", err)
		return nil
	}

	if limit := d.query.EffectiveLimit(); len(articles) > limit {
		articles = articles[:limit]
	}
	d.logger.Info(ctx, "fetched news", "count", len(articles))
	return articles
}

// Summarize replaces each article's quote with a generated summary when a summarizer is set.
// The input slice is not modified.
func (d *DigestBuilder) Summarize(ctx context.Context, articles []model.Article) []model.Article {
	if d.summarizer == nil || len(articles) == 0 {
		return articles
	}

	out := make([]model.Article, len(articles))
	for i, a := range articles {
		summary, err := d.summarizer.Summarize(ctx, a.SummaryInput())
		if err != nil || summary == "" {
			d.logger.Warn(ctx, "failed to summarize article", "index", i+1, "title", a.Title, "error", err)
			summary = SummaryFailedText
		}
		a.Summary = summary
		out[i] = a
	}
	return out
}
