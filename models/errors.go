package models

import "errors"

var (
	// ErrInvalidStream is returned when a stream name or value is not one of
	// snapshots, timeline, preferences or alerts.
	ErrInvalidStream = errors.New("invalid stream")

	// ErrInvalidPriority is returned when an alert priority is not one of
	// safe, warning or danger.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidPayload is returned when a payload is empty or not valid JSON.
	ErrInvalidPayload = errors.New("invalid payload")
)
