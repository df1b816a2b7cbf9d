package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
)

// TaskSource yields the task collection for one user. The repository's
// TaskRepo satisfies it.
type TaskSource interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
}

// AlertEngine re-evaluates the immediate policy against a fresh task snapshot
// and hands eligible alerts to the dispatcher. It runs at initialization and
// after every mutation of the task collection.
type AlertEngine struct {
	tasks      TaskSource
	dispatcher Dispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewAlertEngine creates an AlertEngine. A nil now function uses wall-clock
// UTC time.
func NewAlertEngine(tasks TaskSource, dispatcher Dispatcher, logger *slog.Logger, now func() time.Time) *AlertEngine {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AlertEngine{tasks: tasks, dispatcher: dispatcher, logger: logger, now: now}
}

// Refresh fetches the user's tasks, evaluates the immediate policy, and
// dispatches each eligible alert. Dispatch failures are logged and dropped;
// the local channel is best-effort by contract.
func (e *AlertEngine) Refresh(ctx context.Context, userID string) ([]Alert, error) {
	tasks, err := e.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks for alerts: %w", err)
	}

	alerts := EvaluateImmediate(tasks, e.now())
	for _, a := range alerts {
		if err := e.dispatcher.SendImmediate(ctx, a); err != nil {
			e.logger.WarnContext(ctx, "alert_dispatch_failed",
				"task_id", a.TaskID, "error", err.Error())
		}
	}
	return alerts, nil
}
