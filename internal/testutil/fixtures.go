package testutil

import (
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/google/uuid"
)

// DefaultUserID is the owner assigned to fixtures unless overridden.
const DefaultUserID = "user-1"

// Task options
type TaskOption func(*domain.Task)

func WithUserID(id string) TaskOption {
	return func(t *domain.Task) {
		t.UserID = id
	}
}

func WithCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithInterval(days int) TaskOption {
	return func(t *domain.Task) {
		t.IntervalDays = days
	}
}

func WithLastCompleted(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.LastCompleted = at
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:            uuid.New().String(),
		UserID:        DefaultUserID,
		Name:          name,
		Category:      "General",
		IntervalDays:  30,
		LastCompleted: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Profile options
type ProfileOption func(*domain.Profile)

func WithEmail(email string) ProfileOption {
	return func(p *domain.Profile) {
		p.Email = email
	}
}

func WithEmailEnabled(enabled bool) ProfileOption {
	return func(p *domain.Profile) {
		p.EmailNotificationsEnabled = enabled
	}
}

func WithFrequency(f domain.Frequency) ProfileOption {
	return func(p *domain.Profile) {
		p.NotificationFrequency = f
	}
}

func WithNotificationHour(hour int) ProfileOption {
	return func(p *domain.Profile) {
		p.NotificationTime = hour
	}
}

func NewTestProfile(id string, opts ...ProfileOption) *domain.Profile {
	now := time.Now().UTC()
	p := &domain.Profile{
		ID:                        id,
		Email:                     id + "@example.com",
		EmailNotificationsEnabled: domain.DefaultEmailEnabled,
		NotificationFrequency:     domain.DefaultFrequency,
		NotificationTime:          domain.DefaultNotificationHour,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
