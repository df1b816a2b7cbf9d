package notify

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// digestCronSpec fires at the top of every hour. Eligibility is re-derived
// inside each run, so the trigger only needs to hit every preferred hour once.
const digestCronSpec = "0 * * * *"

// DigestScheduler triggers the email batch on an hourly cron inside serve
// mode.
type DigestScheduler struct {
	cron   *cron.Cron
	runner *BatchRunner
	logger *slog.Logger
}

// NewDigestScheduler creates a scheduler around the given batch runner.
func NewDigestScheduler(runner *BatchRunner, logger *slog.Logger) *DigestScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DigestScheduler{
		cron:   cron.New(),
		runner: runner,
		logger: logger,
	}
}

// Start registers the hourly job and starts the cron loop.
func (s *DigestScheduler) Start() error {
	_, err := s.cron.AddFunc(digestCronSpec, func() {
		ctx := context.Background()
		if _, err := s.runner.Run(ctx); err != nil {
			s.logger.ErrorContext(ctx, "digest_batch_failed", "error", err.Error())
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("digest scheduler started", "spec", digestCronSpec)
	return nil
}

// Stop halts the cron loop. Jobs already running are allowed to finish.
func (s *DigestScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("digest scheduler stopped")
}
