package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"mattermost-notifier/internal/domain/model"
	"mattermost-notifier/internal/domain/ports"
)

const userAgent = "mattermost-notifier/1.0 (+https://mattermost.com)"

// Provider reads a single RSS, Atom or JSON feed.
type Provider struct {
	feedURL    string
	httpClient *http.Client
	parser     *gofeed.Parser
	logger     ports.Logger
}

var _ ports.ItemProvider = (*Provider)(nil)

// NewProvider builds a provider for feedURL.
func NewProvider(feedURL string, timeout time.Duration, logger ports.Logger) *Provider {
	return &Provider{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: timeout},
		parser:     gofeed.NewParser(),
		logger:     logger,
	}
}

// Items fetches the feed and returns its entries in feed order.
func (p *Provider) Items(ctx context.Context) ([]model.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, */*;q=0.8")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", p.feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("feed %s status %d: %s", p.feedURL, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	feed, err := p.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", p.feedURL, err)
	}

	items := make([]model.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		item := convertItem(feed, it)
		if item.Title == "" && item.Link == "" {
			continue
		}
		items = append(items, item)
	}

	if p.logger != nil {
		p.logger.Debug(ctx, "fetched feed", "feed", p.feedURL, "items", len(items))
	}
	return items, nil
}

func convertItem(feed *gofeed.Feed, it *gofeed.Item) model.FeedItem {
	summary := it.Description
	if strings.TrimSpace(summary) == "" {
		summary = it.Content
	}

	item := model.FeedItem{
		GUID:       strings.TrimSpace(it.GUID),
		Title:      PlainText(it.Title),
		Link:       strings.TrimSpace(it.Link),
		Summary:    PlainText(summary),
		Author:     authorName(it),
		ImageURL:   imageURL(it),
		Categories: it.Categories,
		Source:     strings.TrimSpace(feed.Title),
		SourceLink: strings.TrimSpace(feed.Link),
	}

	switch {
	case it.PublishedParsed != nil:
		item.Published = it.PublishedParsed.UTC()
	case it.UpdatedParsed != nil:
		item.Published = it.UpdatedParsed.UTC()
	}
	return item
}

func authorName(it *gofeed.Item) string {
	names := make([]string, 0, len(it.Authors))
	for _, a := range it.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			names = append(names, strings.TrimSpace(a.Name))
		}
	}
	return strings.Join(names, ", ")
}

func imageURL(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return strings.TrimSpace(it.Image.URL)
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return strings.TrimSpace(enc.URL)
		}
	}
	return ""
}
