package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
)

// ProfileSource yields every user profile and records digest delivery. The
// repository's ProfileRepo satisfies it.
type ProfileSource interface {
	List(ctx context.Context) ([]*domain.Profile, error)
	MarkDigestSent(ctx context.Context, id string, sentAt time.Time) error
}

// DigestResult records the outcome of one digest email (or one skipped/failed
// user) within a batch run.
type DigestResult struct {
	UserID    string
	Email     string
	Bucket    Bucket
	TaskCount int
	Err       error
}

// Summary reports one batch run for observability. It is a side effect of the
// run, not an input to any eligibility decision.
type Summary struct {
	RanAt          time.Time
	CurrentUTCHour int
	UsersProcessed int
	EmailsSent     int
	Results        []DigestResult
}

// BatchRunner executes the scheduled email policy once per invocation. Each
// run independently re-derives eligibility from the clock and current data;
// a per-profile last-digest timestamp keeps repeated runs within the same
// eligible hour from re-sending.
type BatchRunner struct {
	profiles ProfileSource
	tasks    TaskSource
	sender   EmailSender
	logger   *slog.Logger
	now      func() time.Time
}

// NewBatchRunner creates a BatchRunner. A nil now function uses wall-clock
// UTC time.
func NewBatchRunner(profiles ProfileSource, tasks TaskSource, sender EmailSender, logger *slog.Logger, now func() time.Time) *BatchRunner {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchRunner{profiles: profiles, tasks: tasks, sender: sender, logger: logger, now: now}
}

// Run processes every user once. A failure for one user never aborts the
// batch: fetch failures skip that user with a logged result, and delivery
// failures are recorded per bucket while remaining users proceed. Only a
// failure to list the profiles themselves fails the run.
func (r *BatchRunner) Run(ctx context.Context) (*Summary, error) {
	now := r.now().UTC()
	summary := &Summary{RanAt: now, CurrentUTCHour: now.Hour()}

	profiles, err := r.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	summary.UsersProcessed = len(profiles)

	for _, p := range profiles {
		r.runUser(ctx, p, now, summary)
	}

	r.logger.InfoContext(ctx, "digest_batch_complete",
		"users_processed", summary.UsersProcessed,
		"emails_sent", summary.EmailsSent,
		"utc_hour", summary.CurrentUTCHour,
	)
	return summary, nil
}

func (r *BatchRunner) runUser(ctx context.Context, p *domain.Profile, now time.Time, summary *Summary) {
	log := r.logger.With("user_id", p.ID)

	if p.Email == "" {
		log.DebugContext(ctx, "digest_skipped", "reason", "no email address")
		return
	}
	if !ShouldSendDigest(p, now) {
		log.DebugContext(ctx, "digest_skipped", "reason", "not eligible at this hour")
		return
	}
	if alreadyDigestedThisHour(p, now) {
		log.InfoContext(ctx, "digest_skipped", "reason", "already sent this hour")
		return
	}

	tasks, err := r.tasks.ListByUser(ctx, p.ID)
	if err != nil {
		log.ErrorContext(ctx, "digest_fetch_failed", "error", err.Error())
		summary.Results = append(summary.Results, DigestResult{
			UserID: p.ID, Email: p.Email, Err: fmt.Errorf("fetching tasks: %w", err),
		})
		return
	}

	buckets := PartitionTasks(tasks, now)
	if buckets.Empty() {
		log.DebugContext(ctx, "digest_skipped", "reason", "no tasks requiring notification")
		return
	}

	sentAny := false
	for _, d := range ComposeAll(buckets, now) {
		result := DigestResult{
			UserID: p.ID, Email: p.Email, Bucket: d.Bucket, TaskCount: len(d.Tasks),
		}
		if err := r.sender.Send(ctx, p.Email, d.Subject, d.HTMLBody); err != nil {
			result.Err = err
			log.ErrorContext(ctx, "digest_send_failed",
				"bucket", string(d.Bucket), "error", err.Error())
		} else {
			sentAny = true
			summary.EmailsSent++
			log.InfoContext(ctx, "digest_sent",
				"bucket", string(d.Bucket), "tasks", len(d.Tasks))
		}
		summary.Results = append(summary.Results, result)
	}

	if sentAny {
		if err := r.profiles.MarkDigestSent(ctx, p.ID, now); err != nil {
			log.WarnContext(ctx, "digest_mark_failed", "error", err.Error())
		}
	}
}

// alreadyDigestedThisHour reports whether the profile already received a
// digest within the hour containing now.
func alreadyDigestedThisHour(p *domain.Profile, now time.Time) bool {
	if p.LastDigestSentAt == nil {
		return false
	}
	return p.LastDigestSentAt.UTC().Truncate(time.Hour).Equal(now.UTC().Truncate(time.Hour))
}
