//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"news-digest/internal/adapter/logging"
	"news-digest/internal/app"
	"news-digest/internal/config"
	"news-digest/internal/domain/ports"
	"news-digest/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(ctx context.Context, opts config.Options) (*app.App, func(), error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideArticleProvider,
		provideSummarizer,
		provideDigestStore,
		provideDigestConfig,
		usecase.NewDigestBuilder,
		provideApp,
	)
	return nil, nil, nil
}
