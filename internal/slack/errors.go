package slack

import "errors"

var (
	// ErrWebhookURLRequired is returned when no webhook URL is configured
	ErrWebhookURLRequired = errors.New("slack: webhook url required")
	// ErrInvalidWebhookURL is returned when the webhook URL is not an absolute http(s) URL
	ErrInvalidWebhookURL = errors.New("slack: invalid webhook url")
	// ErrDeliveryFailed is returned when the webhook request could not be sent
	ErrDeliveryFailed = errors.New("slack: message delivery failed")
	// ErrUnexpectedStatus is returned when the webhook answers with a non-200 status
	ErrUnexpectedStatus = errors.New("slack: unexpected webhook status")
)
