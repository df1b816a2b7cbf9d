package schedule

import (
	"testing"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_Counts(t *testing.T) {
	tasks := []*domain.Task{
		makeTask("overdue", 30, testNow.AddDate(0, 0, -40)),   // -10 days
		makeTask("due today", 30, testNow.AddDate(0, 0, -30)), // 0 days
		makeTask("due soon", 30, testNow.AddDate(0, 0, -25)),  // 5 days
		makeTask("fine", 90, testNow.AddDate(0, 0, -10)),      // 80 days
	}

	s := Aggregate(tasks, testNow)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Overdue)
	assert.Equal(t, 2, s.DueSoon)
	assert.LessOrEqual(t, s.Overdue+s.DueSoon, s.Total)
}

func TestAggregate_AllBucketsCoverTotalOnlyWithoutGoodTasks(t *testing.T) {
	tasks := []*domain.Task{
		makeTask("overdue", 7, testNow.AddDate(0, 0, -9)),
		makeTask("soon", 7, testNow.AddDate(0, 0, -3)),
	}
	s := Aggregate(tasks, testNow)
	assert.Equal(t, s.Total, s.Overdue+s.DueSoon)
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil, testNow)
	assert.Equal(t, Stats{}, s)
}
