package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id                          TEXT PRIMARY KEY,
		email                       TEXT NOT NULL DEFAULT '',
		email_notifications_enabled INTEGER,
		notification_frequency      TEXT
		                            CHECK(notification_frequency IS NULL
		                                  OR notification_frequency IN ('daily','weekly','disabled')),
		notification_time           INTEGER
		                            CHECK(notification_time IS NULL
		                                  OR (notification_time >= 0 AND notification_time <= 23)),
		last_digest_sent_at         TEXT,
		created_at                  TEXT NOT NULL,
		updated_at                  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		name           TEXT NOT NULL CHECK(length(name) > 0 AND length(name) <= 200),
		category       TEXT NOT NULL CHECK(length(category) > 0 AND length(category) <= 100),
		interval_days  INTEGER NOT NULL CHECK(interval_days >= 1 AND interval_days <= 3650),
		last_completed TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '' CHECK(length(description) <= 1000),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,

	`CREATE TABLE IF NOT EXISTS history (
		id           TEXT PRIMARY KEY,
		task_id      TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		user_id      TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		notes        TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_task ON history(task_id)`,
}
