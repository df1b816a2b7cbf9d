package domain

import (
	"fmt"
	"time"
)

// Default notification preferences, applied when a stored profile omits a
// field.
const (
	DefaultEmailEnabled     = true
	DefaultFrequency        = FrequencyDaily
	DefaultNotificationHour = 9
)

// Profile holds a user's identity and notification preferences.
// NotificationTime is an hour of day, 0-23, interpreted in UTC.
type Profile struct {
	ID                        string
	Email                     string
	EmailNotificationsEnabled bool
	NotificationFrequency     Frequency
	NotificationTime          int

	// LastDigestSentAt guards against duplicate digests when the batch job
	// runs more than once within the same eligible hour.
	LastDigestSentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the preference constraints.
func (p *Profile) Validate() error {
	if !ValidFrequencies[string(p.NotificationFrequency)] {
		return fmt.Errorf("notification frequency must be one of daily, weekly, disabled; got %q", p.NotificationFrequency)
	}
	if p.NotificationTime < 0 || p.NotificationTime > 23 {
		return fmt.Errorf("notification time must be an hour between 0 and 23, got %d", p.NotificationTime)
	}
	return nil
}

// ProfileUpdate carries a partial preference update; nil fields keep their
// stored value.
type ProfileUpdate struct {
	Email                     *string
	EmailNotificationsEnabled *bool
	NotificationFrequency     *Frequency
	NotificationTime          *int
}

// Apply copies the non-nil fields of the update onto the profile.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Email != nil {
		p.Email = *u.Email
	}
	p.EmailNotificationsEnabled = BoolFromPtrWithDefault(p.EmailNotificationsEnabled, u.EmailNotificationsEnabled)
	if u.NotificationFrequency != nil {
		p.NotificationFrequency = *u.NotificationFrequency
	}
	p.NotificationTime = IntFromPtrWithDefault(p.NotificationTime, u.NotificationTime)
}
