// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// StreamStatus is the derived view of one stream.
type StreamStatus struct {
	Count int         `json:"count"`
	Items []QueueItem `json:"items"`
}

// QueueStatus maps every stream to its current [StreamStatus]. It is always
// computed from store content and never cached.
type QueueStatus map[Stream]StreamStatus

// NewQueueStatus returns a status with all four streams present and empty.
func NewQueueStatus() QueueStatus {
	status := make(QueueStatus, len(Streams))
	for _, s := range Streams {
		status[s] = StreamStatus{Items: []QueueItem{}}
	}
	return status
}

// Total returns the number of queued items across all streams.
func (q QueueStatus) Total() int {
	total := 0
	for _, st := range q {
		total += st.Count
	}
	return total
}

// Counts returns only the per-stream counts, as used by badge rendering.
func (q QueueStatus) Counts() map[Stream]int {
	counts := make(map[Stream]int, len(Streams))
	for _, s := range Streams {
		counts[s] = q[s].Count
	}
	return counts
}

// Indicator renders the aggregate status line: "Offline" when the device is
// offline, "N items queued" when work is pending, "Up to date" otherwise.
func (q QueueStatus) Indicator(online bool) string {
	if !online {
		return "Offline"
	}
	switch total := q.Total(); total {
	case 0:
		return "Up to date"
	case 1:
		return "1 item queued"
	default:
		return fmt.Sprintf("%d items queued", total)
	}
}
