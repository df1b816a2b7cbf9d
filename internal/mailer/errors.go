package mailer

import "errors"

var (
	// ErrUnavailable indicates the email provider is unreachable.
	ErrUnavailable = errors.New("email provider unavailable")

	// ErrTimeout indicates the send exceeded the configured timeout.
	ErrTimeout = errors.New("email send timed out")

	// ErrRejected indicates the provider refused the message.
	ErrRejected = errors.New("email rejected by provider")

	// ErrNotConfigured indicates delivery is enabled but no API key is set.
	ErrNotConfigured = errors.New("email delivery not configured")
)
