// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/MKhiriev/go-scene-outbox/models"
)

// StreamPolicy is the per-stream drain configuration: how many failed
// attempts an item survives and how the stream is ordered.
type StreamPolicy struct {
	// MaxRetries is the number of failed attempts after which an item is
	// still kept. The attempt that pushes RetryCount above it removes the
	// item.
	MaxRetries int

	// DangerMaxRetries overrides MaxRetries for danger alerts when non-zero.
	DangerMaxRetries int

	// ByPriority drains higher priorities first, oldest first within one
	// priority. Otherwise the stream drains oldest first.
	ByPriority bool
}

// DefaultPolicies is the fixed retry policy, asymmetric by criticality.
var DefaultPolicies = map[models.Stream]StreamPolicy{
	models.StreamSnapshots:   {MaxRetries: 3},
	models.StreamTimeline:    {MaxRetries: 2},
	models.StreamPreferences: {MaxRetries: 1},
	models.StreamAlerts:      {MaxRetries: 3, DangerMaxRetries: 5, ByPriority: true},
}

// MaxRetriesFor returns the retry budget of an item with the given priority.
func (p StreamPolicy) MaxRetriesFor(priority models.Priority) int {
	if priority == models.PriorityDanger && p.DangerMaxRetries > 0 {
		return p.DangerMaxRetries
	}
	return p.MaxRetries
}

// Exhausted reports whether item has used up its budget.
func (p StreamPolicy) Exhausted(item models.QueueItem) bool {
	return item.RetryCount > p.MaxRetriesFor(item.Priority)
}

// Sort orders items in drain order, in place.
func (p StreamPolicy) Sort(items []models.QueueItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if p.ByPriority && items[i].Priority != items[j].Priority {
			return items[i].Priority > items[j].Priority
		}
		return items[i].Before(items[j])
	})
}

func policyFor(policies map[models.Stream]StreamPolicy, stream models.Stream) StreamPolicy {
	if p, ok := policies[stream]; ok {
		return p
	}
	return DefaultPolicies[stream]
}
