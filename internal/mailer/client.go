// Package mailer delivers digest emails through a Resend-compatible HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Client sends email through the provider's POST /emails endpoint.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a mail client for the configured provider.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// sendRequest is the JSON body sent to POST /emails.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendResponse is the JSON body returned on a successful send.
type sendResponse struct {
	ID string `json:"id"`
}

// Send delivers one HTML email. Failed attempts are retried up to the
// configured count unless the context has already expired.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	if c.cfg.APIKey == "" {
		return ErrNotConfigured
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := sendRequest{
		From:    c.cfg.From,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		err := c.doRequest(ctx, body)
		if err == nil {
			c.observer.OnSendComplete(SendEvent{
				To:        to,
				Subject:   subject,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or a provider
		// rejection; only transport-level failures are worth a retry.
		if ctx.Err() != nil || errors.Is(err, ErrRejected) {
			break
		}
	}

	c.observer.OnSendComplete(SendEvent{
		To:        to,
		Subject:   subject,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(lastErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	return lastErr
}

func (c *Client) doRequest(ctx context.Context, body sendRequest) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/emails"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, httpResp.StatusCode, string(respBody))
	}

	var resp sendResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case isConnectionError(err):
		return "unavailable"
	default:
		return "unknown"
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// LogSender satisfies the batch runner's sender contract without delivering
// anything. It is used when mail delivery is disabled, so dry runs still show
// what would have been sent.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.logger.InfoContext(ctx, "email_skipped_delivery_disabled",
		"to", to, "subject", subject, "bytes", len(htmlBody))
	return nil
}
