package mailer

import (
	"fmt"
	"io"
	"time"
)

// SendEvent records metadata about a single email send attempt.
type SendEvent struct {
	To        string
	Subject   string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about email sends for logging and metrics.
type Observer interface {
	OnSendComplete(event SendEvent)
}

// LogObserver writes send events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnSendComplete(event SendEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] email_send to=%s latency_ms=%d status=%s\n",
		ts, event.To, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSendComplete(SendEvent) {}
