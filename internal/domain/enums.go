package domain

// Status classifies a task by how close it is to its next due date.
type Status string

const (
	StatusOverdue Status = "overdue"
	StatusDueSoon Status = "due-soon"
	StatusGood    Status = "good"
)

// Frequency controls how often a user receives digest emails.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyDisabled Frequency = "disabled"
)

// ValidFrequencies is the canonical set of accepted frequency strings.
var ValidFrequencies = map[string]bool{
	"daily": true, "weekly": true, "disabled": true,
}

// SortKey selects the ordering applied to a task listing.
type SortKey string

const (
	SortDaysAscending  SortKey = "days-ascending"
	SortDaysDescending SortKey = "days-descending"
	SortDateAdded      SortKey = "date-added"
	SortDateModified   SortKey = "date-modified"
	SortAlphabetical   SortKey = "alphabetical"
)

// ValidSortKeys is the canonical set of accepted sort key strings.
var ValidSortKeys = map[string]bool{
	"days-ascending": true, "days-descending": true, "date-added": true,
	"date-modified": true, "alphabetical": true,
}

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// SuggestedCategories is offered as completion candidates when creating a
// task. Any free-form category string is accepted.
var SuggestedCategories = []string{"Auto", "HVAC", "Plumbing", "Home", "Garden"}
