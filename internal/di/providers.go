package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"news-digest/internal/adapter/articles"
	"news-digest/internal/adapter/feeds"
	"news-digest/internal/adapter/logging"
	"news-digest/internal/adapter/newsapi"
	"news-digest/internal/adapter/storage"
	"news-digest/internal/adapter/summarizer"
	"news-digest/internal/app"
	"news-digest/internal/config"
	"news-digest/internal/domain/ports"
	"news-digest/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewSlog(os.Stdout, cfg.Log.Level, cfg.Log.Format)
}

func provideArticleProvider(cfg *config.Config, logger ports.Logger) ports.ArticleProvider {
	news := newsapi.New(newsapi.Config{
		APIKey:             cfg.News.APIKey,
		EverythingEndpoint: cfg.News.Endpoint,
		HeadlinesEndpoint:  cfg.News.HeadlinesEndpoint,
		Timeout:            cfg.HTTP.Timeout,
	}, logger)

	if len(cfg.News.FallbackFeeds) == 0 {
		return news
	}
	rss := feeds.NewProvider(cfg.News.FallbackFeeds, cfg.HTTP.Timeout, logger)
	return articles.NewCompositeProvider(logger, news, rss)
}

// provideSummarizer returns nil when summarization is disabled.
func provideSummarizer(ctx context.Context, cfg *config.Config, logger ports.Logger) (ports.Summarizer, func(), error) {
	if !cfg.Summarizer.Enabled {
		return nil, func() {}, nil
	}

	var (
		s       ports.Summarizer
		cleanup = func() {}
	)
	switch cfg.Summarizer.Provider {
	case summarizer.ProviderOpenAI:
		s = summarizer.NewOpenAI(summarizer.OpenAIConfig{
			APIKey:    cfg.OpenAI.APIKey,
			Model:     cfg.OpenAI.Model,
			BaseURL:   cfg.OpenAI.BaseURL,
			MaxTokens: cfg.Summarizer.MaxTokens,
		}, logger)
	case summarizer.ProviderGemini:
		gemini, err := summarizer.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Summarizer.MaxTokens, logger)
		if err != nil {
			return nil, nil, err
		}
		s = gemini
		cleanup = func() {
			if err := gemini.Close(); err != nil {
				logger.Warn(context.Background(), "failed to close gemini client", "error", err)
			}
		}
	default:
		return nil, nil, fmt.Errorf("unsupported summarizer provider %q", cfg.Summarizer.Provider)
	}

	logger.Info(ctx, "summarization enabled", "provider", cfg.Summarizer.Provider)
	return summarizer.WithRateLimit(s, cfg.Summarizer.RequestsPerSecond), cleanup, nil
}

func provideDigestStore(cfg *config.Config, logger ports.Logger) ports.DigestStore {
	return storage.NewMarkdownFile(afero.NewOsFs(), cfg.Output.Path, cfg.Output.Atomic, logger)
}

func provideDigestConfig(cfg *config.Config) usecase.DigestConfig {
	return usecase.DigestConfig{
		Query:    cfg.Query(),
		Title:    cfg.Digest.Title,
		Location: usecase.FixedZone(cfg.Digest.ZoneName, cfg.Digest.UTCOffsetHours),
	}
}

func provideApp(cfg *config.Config, builder *usecase.DigestBuilder, logger ports.Logger) *app.App {
	return app.New(builder, logger, cfg.Schedule.Cron, cfg.Once)
}
