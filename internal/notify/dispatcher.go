package notify

import (
	"context"
	"log/slog"
)

// Dispatcher delivers an immediate alert on the local channel. Delivery is
// best-effort: a channel without permission to notify returns nil and drops
// the alert rather than erroring.
type Dispatcher interface {
	SendImmediate(ctx context.Context, a Alert) error
}

// EmailSender delivers one composed email. The mailer package provides the
// production implementation.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// LogDispatcher writes alerts to a structured logger. It is the delivery
// channel for CLI invocations, where there is no OS notification surface.
type LogDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a Dispatcher that logs alerts.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) SendImmediate(ctx context.Context, a Alert) error {
	d.logger.InfoContext(ctx, "immediate_alert",
		"title", a.Title,
		"body", a.Body,
		"dedupe_tag", a.DedupeTag,
		"due_date", a.DueDate.Format("2006-01-02"),
	)
	return nil
}
