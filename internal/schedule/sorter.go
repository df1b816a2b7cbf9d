package schedule

import (
	"sort"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// alphaCollator performs locale-aware, case-insensitive name comparison.
var alphaCollator = collate.New(language.English, collate.IgnoreCase)

// SortTasks returns a new slice holding the tasks ordered by the given key.
// The input slice is never reordered. Sorting is stable, so tasks with equal
// keys keep their input order; that is the deterministic tie-break.
func SortTasks(tasks []*domain.Task, key domain.SortKey, now time.Time) []*domain.Task {
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)

	switch key {
	case domain.SortDaysAscending:
		sort.SliceStable(sorted, func(i, j int) bool {
			return DaysRemaining(sorted[i], now) < DaysRemaining(sorted[j], now)
		})
	case domain.SortDaysDescending:
		sort.SliceStable(sorted, func(i, j int) bool {
			return DaysRemaining(sorted[i], now) > DaysRemaining(sorted[j], now)
		})
	case domain.SortDateAdded:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case domain.SortDateModified:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
		})
	case domain.SortAlphabetical:
		sort.SliceStable(sorted, func(i, j int) bool {
			return alphaCollator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}
	return sorted
}

// FilterByCategory returns a new slice holding the tasks whose category
// matches exactly. The sentinel domain.CategoryAll disables filtering.
func FilterByCategory(tasks []*domain.Task, category string) []*domain.Task {
	if category == domain.CategoryAll {
		out := make([]*domain.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
