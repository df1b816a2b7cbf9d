package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/upkeep/internal/db"
	"github.com/alexanderramin/upkeep/internal/domain"
)

// profileColumns is the canonical SELECT column list for profiles.
const profileColumns = `id, email, email_notifications_enabled,
		notification_frequency, notification_time, last_digest_sent_at,
		created_at, updated_at`

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
//
// The three preference columns are nullable: a NULL means the stored profile
// omits the field, and the documented default is applied on read
// (enabled=true, frequency=daily, hour=9).
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProfileRepo) List(ctx context.Context) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, email, email_notifications_enabled,
		notification_frequency, notification_time, last_digest_sent_at,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			email_notifications_enabled = excluded.email_notifications_enabled,
			notification_frequency = excluded.notification_frequency,
			notification_time = excluded.notification_time,
			last_digest_sent_at = excluded.last_digest_sent_at,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Email,
		boolToInt(p.EmailNotificationsEnabled),
		string(p.NotificationFrequency),
		p.NotificationTime,
		nullableTimeToString(p.LastDigestSentAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) MarkDigestSent(ctx context.Context, id string, sentAt time.Time) error {
	query := `UPDATE profiles SET last_digest_sent_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		sentAt.UTC().Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("marking digest sent: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking digest mark result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	var enabled sql.NullInt64
	var frequency sql.NullString
	var hour sql.NullInt64
	var lastDigest sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(
		&p.ID,
		&p.Email,
		&enabled,
		&frequency,
		&hour,
		&lastDigest,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.EmailNotificationsEnabled = domain.DefaultEmailEnabled
	if enabled.Valid {
		p.EmailNotificationsEnabled = intToBool(int(enabled.Int64))
	}
	p.NotificationFrequency = domain.DefaultFrequency
	if frequency.Valid && frequency.String != "" {
		p.NotificationFrequency = domain.Frequency(frequency.String)
	}
	p.NotificationTime = domain.DefaultNotificationHour
	if hour.Valid {
		p.NotificationTime = int(hour.Int64)
	}
	p.LastDigestSentAt = parseNullableTime(lastDigest, time.RFC3339)

	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
