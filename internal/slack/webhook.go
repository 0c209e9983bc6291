package slack

import (
	"context"
	"fmt"
	"net/http"

	"github.com/theopenlane/httpsling"
)

// Message is an incoming webhook payload
type Message struct {
	// Text is the notification fallback text
	Text string `json:"text"`
	// Username overrides the configured bot name when set
	Username string `json:"username,omitempty"`
	// Blocks holds the Block Kit layout
	Blocks []Block `json:"blocks,omitempty"`
}

// Block is a Block Kit block
type Block struct {
	// Type is the block type (header, section, context, divider)
	Type string `json:"type"`
	// Text is the block's text object
	Text *TextObject `json:"text,omitempty"`
	// Fields holds side-by-side text objects for section blocks
	Fields []TextObject `json:"fields,omitempty"`
	// Elements holds the text objects of a context block
	Elements []TextObject `json:"elements,omitempty"`
}

// TextObject is a Block Kit text object
type TextObject struct {
	// Type is plain_text or mrkdwn
	Type string `json:"type"`
	// Text is the content
	Text string `json:"text"`
}

// Send posts msg to the webhook
func (c *Client) Send(ctx context.Context, msg Message) error {
	if msg.Username == "" {
		msg.Username = c.username
	}

	requester, err := httpsling.New(
		httpsling.URL(c.endpoint),
		httpsling.Post(),
		httpsling.JSONBody(msg),
		httpsling.WithHTTPClient(c.httpClient),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	resp, err := requester.SendWithContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}
