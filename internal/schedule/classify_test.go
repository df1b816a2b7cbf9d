package schedule

import (
	"testing"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name          string
		daysRemaining int
		wantStatus    domain.Status
		wantLabel     string
	}{
		{"ten days overdue", -10, domain.StatusOverdue, "10 days overdue"},
		{"one day overdue", -1, domain.StatusOverdue, "1 days overdue"},
		{"due today", 0, domain.StatusDueSoon, "Due today"},
		{"due tomorrow", 1, domain.StatusDueSoon, "1 days remaining"},
		{"top of due-soon band", 7, domain.StatusDueSoon, "7 days remaining"},
		{"just past the band", 8, domain.StatusGood, "8 days remaining"},
		{"far out", 90, domain.StatusGood, "90 days remaining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Classify(tt.daysRemaining)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantLabel, info.Label)
		})
	}
}
