package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/upkeep/internal/db"
	"github.com/alexanderramin/upkeep/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, e *domain.HistoryEntry) error {
	query := `INSERT INTO history (id, task_id, user_id, completed_at, notes)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.TaskID,
		e.UserID,
		e.CompletedAt.Format(time.RFC3339),
		e.Notes,
	)
	if err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.HistoryEntry, error) {
	query := `SELECT id, task_id, user_id, completed_at, notes
		FROM history WHERE task_id = ? ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var completedAt string
		if err := rows.Scan(&e.ID, &e.TaskID, &e.UserID, &completedAt, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		if e.CompletedAt, err = time.Parse(time.RFC3339, completedAt); err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}
