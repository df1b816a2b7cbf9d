package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type HistoryRepo interface {
	Append(ctx context.Context, e *domain.HistoryEntry) error
	ListByTask(ctx context.Context, taskID string) ([]*domain.HistoryEntry, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
	MarkDigestSent(ctx context.Context, id string, sentAt time.Time) error
}
