package domain

import "time"

// HistoryEntry records one completion event for a task. Entries are
// append-only and never edited; deleting a task cascades to its history.
type HistoryEntry struct {
	ID          string
	TaskID      string
	UserID      string
	CompletedAt time.Time
	Notes       string
}
