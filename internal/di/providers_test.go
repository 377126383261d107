package di

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mattermost-notifier/internal/adapter/feeds"
	"mattermost-notifier/internal/adapter/mattermost"
	"mattermost-notifier/internal/config"
	"mattermost-notifier/internal/usecase"
)

func testConfig() *config.Config {
	return &config.Config{
		WebhookURL:     "https://chat.example.com/hooks/abc",
		Channel:        "town-square",
		Username:       "feed-bot",
		IconURL:        "https://example.com/icon.png",
		FeedURLs:       []string{"https://a.example.com/rss", "https://b.example.com/atom"},
		ScheduleCron:   "*/30 * * * *",
		MaxItems:       5,
		RequestTimeout: time.Second,
		LogLevel:       "debug",
	}
}

func TestProviders(t *testing.T) {
	cfg := testConfig()

	logger := provideSlogLogger(cfg)
	require.NotNil(t, logger)

	_, ok := provideItemProvider(cfg, nil).(*feeds.CompositeProvider)
	assert.True(t, ok)

	_, ok = provideNotifier(cfg, nil).(*mattermost.Client)
	assert.True(t, ok)

	assert.Equal(t, usecase.FeedDigestConfig{
		Channel:  "town-square",
		Username: "feed-bot",
		IconURL:  "https://example.com/icon.png",
		MaxItems: 5,
	}, provideDigestConfig(cfg))

	assert.Equal(t, "*/30 * * * *", provideSchedule(cfg))
}
