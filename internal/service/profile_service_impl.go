package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

// Get returns the user's profile. A user with no stored profile gets the
// documented preference defaults; that counts as "all fields omitted", not a
// lookup failure.
func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return defaultProfile(userID), nil
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) UpdatePreferences(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Profile, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		p = defaultProfile(userID)
	}

	upd.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func defaultProfile(userID string) *domain.Profile {
	now := time.Now().UTC()
	return &domain.Profile{
		ID:                        userID,
		EmailNotificationsEnabled: domain.DefaultEmailEnabled,
		NotificationFrequency:     domain.DefaultFrequency,
		NotificationTime:          domain.DefaultNotificationHour,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
}
