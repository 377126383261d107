package feeds

import (
	"context"
	"strings"

	"mattermost-notifier/internal/domain/model"
	"mattermost-notifier/internal/domain/ports"
)

// CompositeProvider merges multiple item providers together.
type CompositeProvider struct {
	logger    ports.Logger
	providers []ports.ItemProvider
}

var _ ports.ItemProvider = (*CompositeProvider)(nil)

// NewCompositeProvider constructs a provider that queries the given providers sequentially.
func NewCompositeProvider(logger ports.Logger, providers ...ports.ItemProvider) *CompositeProvider {
	active := make([]ports.ItemProvider, 0, len(providers))
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

// Items returns the entries of every provider, de-duplicated by item key.
// A failing provider is logged and skipped; an error is returned only when
// nothing could be collected.
func (c *CompositeProvider) Items(ctx context.Context) ([]model.FeedItem, error) {
	results := make([]model.FeedItem, 0)
	seen := make(map[string]struct{})
	var firstErr error

	for _, provider := range c.providers {
		items, err := provider.Items(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if c.logger != nil {
				c.logger.Error(ctx, "feed provider failed", "error", err)
			}
			continue
		}

		for _, item := range items {
			key := canonicalItemKey(item)
			if key == "" {
				continue
			}
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, item)
		}
	}

	if len(results) == 0 && firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

func canonicalItemKey(item model.FeedItem) string {
	return strings.ToLower(strings.TrimSpace(item.Key()))
}
