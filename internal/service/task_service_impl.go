package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/upkeep/internal/db"
	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	history  repository.HistoryRepo
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, history repository.HistoryRepo, profiles repository.ProfileRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, history: history, profiles: profiles, uow: uow}
}

// ensureOwnerProfile provisions a default profile row for userID if none
// exists yet. Task rows reference the owner's profile, and a first-time user
// has not touched their preferences.
func (s *taskService) ensureOwnerProfile(ctx context.Context, userID string) error {
	_, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.profiles.Upsert(ctx, defaultProfile(userID))
	}
	return err
}

// ownedTask loads a task through the given repo and verifies it belongs to
// userID. A task owned by someone else is reported as not found rather than
// revealing its existence.
func ownedTask(ctx context.Context, tasks repository.TaskRepo, userID, id string) (*domain.Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	task, err := tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, fmt.Errorf("task %s: %w", id, repository.ErrNotFound)
	}
	return task, nil
}

func (s *taskService) Create(ctx context.Context, userID string, t *domain.Task) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := s.ensureOwnerProfile(ctx, userID); err != nil {
		return fmt.Errorf("provisioning profile: %w", err)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.UserID = userID
	if t.LastCompleted.IsZero() {
		t.LastCompleted = time.Now().UTC()
	}
	if err := t.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	return ownedTask(ctx, s.tasks, userID, id)
}

func (s *taskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, userID, id string, upd domain.TaskUpdate) (*domain.Task, error) {
	task, err := ownedTask(ctx, s.tasks, userID, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(task)
	if err := task.Validate(); err != nil {
		return nil, err
	}
	task.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	if _, err := ownedTask(ctx, s.tasks, userID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

// Duplicate creates a fresh copy of an existing task. The copy gets its own
// identity, a "(Copy)" suffix, and a completion anchor of now, so it starts a
// new recurrence cycle instead of inheriting the source's urgency.
func (s *taskService) Duplicate(ctx context.Context, userID, id string) (*domain.Task, error) {
	src, err := ownedTask(ctx, s.tasks, userID, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	copyTask := &domain.Task{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          src.Name + " (Copy)",
		Category:      src.Category,
		IntervalDays:  src.IntervalDays,
		LastCompleted: now,
		Description:   src.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := copyTask.Validate(); err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, copyTask); err != nil {
		return nil, err
	}
	return copyTask, nil
}

// Complete resets the task's recurrence anchor and appends a history entry,
// atomically. Either both writes land or neither does.
func (s *taskService) Complete(ctx context.Context, userID, id, notes string) (*domain.Task, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	var completed *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txHistory := repository.NewSQLiteHistoryRepo(tx)

		task, err := ownedTask(ctx, txTasks, userID, id)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		task.LastCompleted = now
		task.UpdatedAt = now
		if err := txTasks.Update(ctx, task); err != nil {
			return err
		}

		entry := &domain.HistoryEntry{
			ID:          uuid.New().String(),
			TaskID:      task.ID,
			UserID:      userID,
			CompletedAt: now,
			Notes:       notes,
		}
		if err := txHistory.Append(ctx, entry); err != nil {
			return err
		}
		completed = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// Import inserts a batch of tasks in a single transaction. If any insert
// fails the whole batch rolls back and the count is zero.
func (s *taskService) Import(ctx context.Context, userID string, tasks []*domain.Task) (int, error) {
	if userID == "" {
		return 0, ErrUnauthenticated
	}
	for _, t := range tasks {
		t.UserID = userID
		if err := t.Validate(); err != nil {
			return 0, fmt.Errorf("task %q: %w", t.Name, err)
		}
	}
	if err := s.ensureOwnerProfile(ctx, userID); err != nil {
		return 0, fmt.Errorf("provisioning profile: %w", err)
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, t := range tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return fmt.Errorf("task %q: %w", t.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

func (s *taskService) History(ctx context.Context, userID, id string) ([]*domain.HistoryEntry, error) {
	if _, err := ownedTask(ctx, s.tasks, userID, id); err != nil {
		return nil, err
	}
	return s.history.ListByTask(ctx, id)
}
