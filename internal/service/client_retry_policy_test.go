package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-scene-outbox/models"
)

var testBaseTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return testBaseTime.Add(time.Duration(minutes) * time.Minute)
}

func TestStreamPolicy_MaxRetriesFor(t *testing.T) {
	tests := []struct {
		name     string
		stream   models.Stream
		priority models.Priority
		want     int
	}{
		{name: "snapshots", stream: models.StreamSnapshots, want: 3},
		{name: "timeline", stream: models.StreamTimeline, want: 2},
		{name: "preferences", stream: models.StreamPreferences, want: 1},
		{name: "danger alert", stream: models.StreamAlerts, priority: models.PriorityDanger, want: 5},
		{name: "warning alert", stream: models.StreamAlerts, priority: models.PriorityWarning, want: 3},
		{name: "safe alert", stream: models.StreamAlerts, priority: models.PrioritySafe, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultPolicies[tt.stream].MaxRetriesFor(tt.priority))
		})
	}
}

func TestStreamPolicy_Exhausted(t *testing.T) {
	policy := DefaultPolicies[models.StreamPreferences]

	assert.False(t, policy.Exhausted(models.QueueItem{RetryCount: 1}))
	assert.True(t, policy.Exhausted(models.QueueItem{RetryCount: 2}))
}

func TestStreamPolicy_Sort_AlertsByPriorityThenAge(t *testing.T) {
	items := []models.QueueItem{
		{ID: 1, Priority: models.PriorityDanger, EnqueuedAt: at(1)},
		{ID: 2, Priority: models.PriorityWarning, EnqueuedAt: at(3)},
		{ID: 3, Priority: models.PrioritySafe, EnqueuedAt: at(2)},
		{ID: 4, Priority: models.PriorityDanger, EnqueuedAt: at(0)},
	}

	DefaultPolicies[models.StreamAlerts].Sort(items)

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []int64{4, 1, 2, 3}, ids)
}

func TestStreamPolicy_Sort_OthersByAge(t *testing.T) {
	items := []models.QueueItem{
		{ID: 3, EnqueuedAt: at(2)},
		{ID: 1, EnqueuedAt: at(1)},
		{ID: 2, EnqueuedAt: at(1)},
	}

	DefaultPolicies[models.StreamTimeline].Sort(items)

	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, int64(3), items[2].ID)
}

func TestPolicyFor_UnknownStreamFallsBack(t *testing.T) {
	policy := policyFor(map[models.Stream]StreamPolicy{}, models.StreamAlerts)
	assert.Equal(t, DefaultPolicies[models.StreamAlerts], policy)
}
