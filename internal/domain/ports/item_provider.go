package ports

import (
	"context"

	"mattermost-notifier/internal/domain/model"
)

// ItemProvider fetches the current entries of one or more feeds.
type ItemProvider interface {
	Items(ctx context.Context) ([]model.FeedItem, error)
}
