// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EnqueueResult is returned by the sync manager for every queue request.
type EnqueueResult struct {
	// Queued is true when the item was stored for a later drain.
	Queued bool `json:"queued"`
	// Delivered is true when the immediate delivery attempt succeeded.
	Delivered bool   `json:"delivered"`
	Message   string `json:"message"`
}

// StreamResult tallies the outcome of draining one stream.
type StreamResult struct {
	Delivered int `json:"delivered"`
	Retried   int `json:"retried"`
	Exhausted int `json:"exhausted"`
}

// Failed returns the number of failed attempts in the stream, whether or not
// the item is kept for another cycle.
func (r StreamResult) Failed() int {
	return r.Retried + r.Exhausted
}

// SyncResults aggregates one drain cycle across all streams.
type SyncResults struct {
	Successful int                     `json:"successful"`
	Failed     int                     `json:"failed"`
	Streams    map[Stream]StreamResult `json:"streams,omitempty"`
}

// Add folds the outcome of one stream into the totals.
func (r *SyncResults) Add(stream Stream, res StreamResult) {
	if r.Streams == nil {
		r.Streams = make(map[Stream]StreamResult, len(Streams))
	}
	prev := r.Streams[stream]
	prev.Delivered += res.Delivered
	prev.Retried += res.Retried
	prev.Exhausted += res.Exhausted
	r.Streams[stream] = prev

	r.Successful += res.Delivered
	r.Failed += res.Failed()
}

// Merge folds another cycle's results into r.
func (r *SyncResults) Merge(other SyncResults) {
	for stream, res := range other.Streams {
		r.Add(stream, res)
	}
}

// SyncReport is what "Sync Now" resolves to. It never carries an error:
// partial failure is expressed through Results.
type SyncReport struct {
	Success bool        `json:"success"`
	Results SyncResults `json:"results"`
	Message string      `json:"message,omitempty"`
}

// OperationResult describes the outcome of a queue maintenance action such as
// clearing a stream.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
