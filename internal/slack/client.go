// Package slack shares defanged indicators to a Slack channel through an incoming webhook
package slack

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// defaultTimeout bounds a webhook request when no HTTP client is supplied
const defaultTimeout = 10 * time.Second

// Client posts messages to one incoming webhook
type Client struct {
	endpoint   string
	username   string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client; nil is ignored
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUsername sets the bot name used when a message does not carry one
func WithUsername(name string) Option {
	return func(c *Client) {
		c.username = name
	}
}

// New validates webhookURL and returns a client for it
func New(webhookURL string, opts ...Option) (*Client, error) {
	if webhookURL == "" {
		return nil, ErrWebhookURLRequired
	}

	u, err := url.Parse(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWebhookURL, err)
	}

	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return nil, ErrInvalidWebhookURL
	}

	c := &Client{
		endpoint:   u.String(),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
