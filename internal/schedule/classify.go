package schedule

import (
	"fmt"

	"github.com/alexanderramin/upkeep/internal/domain"
)

// DueSoonThresholdDays is the upper bound (inclusive) of the due-soon band.
// Together with zero it is a fixed constant of the product, not configuration.
const DueSoonThresholdDays = 7

// StatusInfo pairs a task's urgency status with its display label.
type StatusInfo struct {
	Status domain.Status
	Label  string
}

// Classify maps a days-remaining value onto an urgency status:
// negative is overdue, 0..7 is due-soon, above 7 is good.
func Classify(daysRemaining int) StatusInfo {
	switch {
	case daysRemaining < 0:
		return StatusInfo{
			Status: domain.StatusOverdue,
			Label:  fmt.Sprintf("%d days overdue", -daysRemaining),
		}
	case daysRemaining == 0:
		return StatusInfo{Status: domain.StatusDueSoon, Label: "Due today"}
	case daysRemaining <= DueSoonThresholdDays:
		return StatusInfo{
			Status: domain.StatusDueSoon,
			Label:  fmt.Sprintf("%d days remaining", daysRemaining),
		}
	default:
		return StatusInfo{
			Status: domain.StatusGood,
			Label:  fmt.Sprintf("%d days remaining", daysRemaining),
		}
	}
}
