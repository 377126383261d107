package mattermost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mattermost-notifier/internal/domain/model"
	"mattermost-notifier/internal/domain/ports"
)

// maxResponseBody bounds how much of a webhook reply is kept. Mattermost
// answers with "ok" or a short JSON error.
const maxResponseBody = 64 << 10

// ErrDelivery is matched by every *DeliveryError.
var ErrDelivery = errors.New("webhook delivery failed")

// DeliveryError wraps anything that went wrong while posting a message.
type DeliveryError struct {
	// URL is the webhook address with its secret path removed.
	URL string
	// StatusCode is set when the server answered.
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("deliver to %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("deliver to %s: %v", e.URL, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDelivery.
func (e *DeliveryError) Is(target error) bool { return target == ErrDelivery }

// Response is what the webhook answered.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type options struct {
	headers    map[string]string
	httpClient *http.Client
	httpErrors bool
}

// Option tweaks a single Send call.
type Option func(*options)

// WithHeader adds a request header. Content-Type cannot be overridden.
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithHTTPClient sends the request through c instead of the client's own.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithHTTPErrors controls whether a non-2xx answer is reported as an error.
// It is on by default; when off the response is returned as is.
func WithHTTPErrors(enabled bool) Option {
	return func(o *options) { o.httpErrors = enabled }
}

// Client posts messages to Mattermost incoming webhooks.
// It is safe for concurrent use.
type Client struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Client)(nil)

// NewClient creates a webhook client whose Notify posts to webhookURL.
func NewClient(webhookURL string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Notify posts msg to the configured webhook.
func (c *Client) Notify(ctx context.Context, msg *model.Message) error {
	_, err := c.Send(ctx, c.webhookURL, msg)
	return err
}

// Send posts msg as JSON to webhookURL. A message that fails validation is
// rejected before any request is made; every other failure is returned as a
// *DeliveryError.
func (c *Client) Send(ctx context.Context, webhookURL string, msg *model.Message, opts ...Option) (*Response, error) {
	o := options{httpClient: c.httpClient, httpErrors: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = http.DefaultClient
	}

	if msg == nil {
		return nil, &model.TypeError{Field: "message", Got: msg}
	}
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}

	target := redact(webhookURL)
	if webhookURL == "" {
		return nil, &DeliveryError{URL: target, Err: errors.New("webhook URL is empty")}
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, &DeliveryError{URL: target, Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, &DeliveryError{URL: target, Err: fmt.Errorf("create request: %w", err)}
	}
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, &DeliveryError{URL: target, Err: fmt.Errorf("perform request: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &DeliveryError{URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	res := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}

	if o.httpErrors && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return res, &DeliveryError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", bytes.TrimSpace(data)),
		}
	}

	if c.logger != nil {
		c.logger.Info(ctx, "message sent to mattermost",
			"webhook", target,
			"status", resp.StatusCode,
			"attachments", len(msg.Attachments()),
		)
	}
	return res, nil
}

// redact drops the path of a webhook URL; for Mattermost it is the secret
// hook key.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "<invalid url>"
	}
	return u.Scheme + "://" + u.Host
}
