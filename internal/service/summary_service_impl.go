package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/upkeep/internal/app"
	"github.com/alexanderramin/upkeep/internal/contract"
	"github.com/alexanderramin/upkeep/internal/repository"
	"github.com/alexanderramin/upkeep/internal/schedule"
)

// The HTTP layer consumes the summary through its use-case port.
var _ app.SummaryUseCase = (*summaryService)(nil)

// summaryTasksCap limits how many tasks the summary returns when nothing
// needs attention.
const summaryTasksCap = 5

type summaryService struct {
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewSummaryService(tasks repository.TaskRepo, observers ...UseCaseObserver) SummaryService {
	return &summaryService{
		tasks:    tasks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *summaryService) Summarize(ctx context.Context, req contract.SummaryRequest) (resp *contract.SummaryResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "summarize",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user": req.UserID},
		})
	}()

	if req.UserID == "" {
		return nil, ErrUnauthenticated
	}

	tasks, err := s.tasks.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	views := make([]contract.TaskDigestView, 0, len(tasks))
	var urgent []contract.TaskDigestView
	overdue := 0
	for _, task := range tasks {
		d := schedule.DaysRemaining(task, now)
		view := contract.TaskDigestView{
			ID:            task.ID,
			Name:          task.Name,
			Category:      task.Category,
			DaysRemaining: d,
			IsUrgent:      d >= 0 && d <= 1,
			IsOverdue:     d < 0,
			NextDueDate:   schedule.NextDueDate(task).Format("2006-01-02"),
		}
		views = append(views, view)
		if view.IsUrgent {
			urgent = append(urgent, view)
		}
		if view.IsOverdue {
			overdue++
		}
	}

	resp = &contract.SummaryResponse{
		TotalTasks:   len(views),
		UrgentTasks:  len(urgent),
		OverdueTasks: overdue,
	}

	if len(urgent) > 0 {
		resp.Tasks = urgent
		resp.Summary = fmt.Sprintf("You have %d urgent maintenance task(s) due soon!", len(urgent))
	} else {
		resp.Tasks = views
		if len(resp.Tasks) > summaryTasksCap {
			resp.Tasks = resp.Tasks[:summaryTasksCap]
		}
		if overdue > 0 {
			resp.Summary = fmt.Sprintf("You have %d overdue maintenance task(s).", overdue)
		} else {
			resp.Summary = "All your maintenance tasks are up to date!"
		}
	}
	return resp, nil
}
