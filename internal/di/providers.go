package di

import (
	"log/slog"
	"os"

	"mattermost-notifier/internal/adapter/feeds"
	"mattermost-notifier/internal/adapter/logging"
	"mattermost-notifier/internal/adapter/mattermost"
	"mattermost-notifier/internal/config"
	"mattermost-notifier/internal/domain/ports"
	"mattermost-notifier/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	return slog.New(handler)
}

func provideItemProvider(cfg *config.Config, logger ports.Logger) ports.ItemProvider {
	providers := make([]ports.ItemProvider, 0, len(cfg.FeedURLs))
	for _, u := range cfg.FeedURLs {
		providers = append(providers, feeds.NewProvider(u, cfg.RequestTimeout, logger))
	}
	return feeds.NewCompositeProvider(logger, providers...)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return mattermost.NewClient(cfg.WebhookURL, cfg.RequestTimeout, logger)
}

func provideDigestConfig(cfg *config.Config) usecase.FeedDigestConfig {
	return usecase.FeedDigestConfig{
		Channel:  cfg.Channel,
		Username: cfg.Username,
		IconURL:  cfg.IconURL,
		MaxItems: cfg.MaxItems,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
