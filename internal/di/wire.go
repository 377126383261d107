//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"mattermost-notifier/internal/adapter/logging"
	"mattermost-notifier/internal/app"
	"mattermost-notifier/internal/config"
	"mattermost-notifier/internal/domain/ports"
	"mattermost-notifier/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(ctx context.Context) (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideItemProvider,
		provideNotifier,
		provideDigestConfig,
		usecase.NewFeedDigest,
		wire.Bind(new(app.Job), new(*usecase.FeedDigest)),
		app.New,
		provideSchedule,
	)
	return nil, nil
}
