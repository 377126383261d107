package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"mattermost-notifier/internal/domain/model"
	"mattermost-notifier/internal/domain/ports"
)

const (
	summaryLimit   = 700
	defaultMaxSeen = 1000
)

// FeedDigest announces new feed items as one Mattermost message per run.
// Run is not safe for concurrent use.
type FeedDigest struct {
	items    ports.ItemProvider
	notifier ports.Notifier
	logger   ports.Logger
	cfg      FeedDigestConfig
	seen     *seenSet
}

// FeedDigestConfig controls how the outgoing message looks.
type FeedDigestConfig struct {
	Channel  string
	Username string
	IconURL  string
	MaxItems int
	// MaxSeen bounds how many announced item keys are remembered.
	MaxSeen int
}

// NewFeedDigest constructs a FeedDigest use case.
func NewFeedDigest(
	items ports.ItemProvider,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg FeedDigestConfig,
) *FeedDigest {
	if cfg.MaxSeen <= 0 {
		cfg.MaxSeen = defaultMaxSeen
	}
	return &FeedDigest{
		items:    items,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		seen:     newSeenSet(cfg.MaxSeen),
	}
}

// Run fetches items, posts the ones not announced before and remembers them.
// Nothing is sent when there is nothing new.
func (d *FeedDigest) Run(ctx context.Context) error {
	start := time.Now()
	d.logger.Info(ctx, "starting feed digest")

	items, err := d.items.Items(ctx)
	if err != nil {
		d.logger.Error(ctx, "failed to fetch feed items", "error", err)
		return err
	}

	fresh := d.selectFresh(items)
	if len(fresh) == 0 {
		d.logger.Info(ctx, "no new feed items", "fetched", len(items))
		return nil
	}

	msg, err := d.buildMessage(ctx, fresh)
	if err != nil {
		d.logger.Error(ctx, "failed to build message", "error", err)
		return err
	}
	if len(msg.Attachments()) == 0 {
		d.logger.Warn(ctx, "no announceable feed items", "fresh", len(fresh))
		return nil
	}

	if err := d.notifier.Notify(ctx, msg); err != nil {
		d.logger.Error(ctx, "failed to send notification", "error", err)
		return err
	}

	for _, item := range fresh {
		d.seen.add(item.Key())
	}

	d.logger.Info(ctx, "feed digest completed", "announced", len(fresh), "duration", time.Since(start))
	return nil
}

// selectFresh drops already announced items and keeps the newest MaxItems.
func (d *FeedDigest) selectFresh(items []model.FeedItem) []model.FeedItem {
	fresh := make([]model.FeedItem, 0, len(items))
	for _, item := range items {
		if item.Key() == "" || d.seen.has(item.Key()) {
			continue
		}
		fresh = append(fresh, item)
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Published.After(fresh[j].Published)
	})

	if d.cfg.MaxItems > 0 && len(fresh) > d.cfg.MaxItems {
		fresh = fresh[:d.cfg.MaxItems]
	}
	return fresh
}

func (d *FeedDigest) buildMessage(ctx context.Context, items []model.FeedItem) (*model.Message, error) {
	attachments := make([]model.AttachmentPayload, 0, len(items))
	announced := make([]model.FeedItem, 0, len(items))
	for _, item := range items {
		a, err := d.buildAttachment(ctx, item)
		if err != nil {
			d.logger.Warn(ctx, "skipping feed item", "item", item.Key(), "error", err)
			continue
		}
		attachments = append(attachments, a)
		announced = append(announced, item)
	}

	msg, err := model.NewMessage(headline(announced))
	if err != nil {
		return nil, err
	}
	msg.SetChannel(d.cfg.Channel).SetUsername(d.cfg.Username)
	if err := msg.SetIconURL(d.cfg.IconURL); err != nil {
		return nil, fmt.Errorf("icon url: %w", err)
	}
	if err := msg.SetAttachments(attachments...); err != nil {
		return nil, err
	}
	return msg, nil
}

func (d *FeedDigest) buildAttachment(ctx context.Context, item model.FeedItem) (*model.Attachment, error) {
	fallback := item.Title
	if item.Link != "" {
		fallback = strings.TrimSpace(fallback + " " + item.Link)
	}
	a, err := model.NewAttachment(fallback)
	if err != nil {
		return nil, err
	}
	a.Info().SetText(summarize(item.Summary, summaryLimit))

	if err := a.SetAuthor(item.Source, item.SourceLink, ""); err != nil {
		d.dropURL(ctx, item, err)
		_ = a.SetAuthor(item.Source, "", "")
	}
	if err := a.SetTitle(item.Title, item.Link); err != nil {
		d.dropURL(ctx, item, err)
		_ = a.SetTitle(item.Title, "")
	}
	if err := a.SetThumbURL(item.ImageURL); err != nil {
		d.dropURL(ctx, item, err)
	}

	if item.Author != "" {
		a.AddField("Author", item.Author, true)
	}
	if !item.Published.IsZero() {
		a.AddField("Published", item.Published.UTC().Format("2006-01-02 15:04 UTC"), true)
	}
	if len(item.Categories) > 0 {
		a.AddField("Tags", strings.Join(item.Categories, ", "), false)
	}
	return a, nil
}

func (d *FeedDigest) dropURL(ctx context.Context, item model.FeedItem, err error) {
	d.logger.Warn(ctx, "dropping invalid url from feed item", "item", item.Key(), "error", err)
}

func headline(items []model.FeedItem) string {
	noun := "items"
	if len(items) == 1 {
		noun = "item"
	}

	sources := make([]string, 0)
	seen := make(map[string]struct{})
	for _, item := range items {
		if item.Source == "" {
			continue
		}
		if _, ok := seen[item.Source]; ok {
			continue
		}
		seen[item.Source] = struct{}{}
		sources = append(sources, item.Source)
	}

	if len(sources) == 0 {
		return fmt.Sprintf("**%d new %s**", len(items), noun)
	}
	return fmt.Sprintf("**%d new %s** from %s", len(items), noun, strings.Join(sources, ", "))
}

func summarize(content string, limit int) string {
	clean := strings.TrimSpace(content)
	runes := []rune(clean)
	if len(runes) <= limit {
		return clean
	}

	trimmed := string(runes[:limit])
	lastSpace := strings.LastIndex(trimmed, " ")
	if lastSpace > 0 {
		trimmed = trimmed[:lastSpace]
	}
	return trimmed + "..."
}
