package ports

import (
	"context"

	"mattermost-notifier/internal/domain/model"
)

// Notifier delivers a message to a chat webhook (e.g. Mattermost).
type Notifier interface {
	Notify(ctx context.Context, msg *model.Message) error
}
