package service

import (
	"context"

	"github.com/alexanderramin/upkeep/internal/contract"
	"github.com/alexanderramin/upkeep/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, userID string, t *domain.Task) error
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, userID, id string, upd domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, userID, id string) error
	Duplicate(ctx context.Context, userID, id string) (*domain.Task, error)
	Complete(ctx context.Context, userID, id, notes string) (*domain.Task, error)
	History(ctx context.Context, userID, id string) ([]*domain.HistoryEntry, error)
	Import(ctx context.Context, userID string, tasks []*domain.Task) (int, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	UpdatePreferences(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Profile, error)
}

type SummaryService interface {
	Summarize(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
}
