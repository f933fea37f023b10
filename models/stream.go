// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Stream identifies one of the four independent outbox work categories.
// The set is closed: every valid value is listed in [Streams].
type Stream uint8

const (
	StreamSnapshots Stream = iota + 1
	StreamTimeline
	StreamPreferences
	StreamAlerts
)

// Streams lists every valid stream in canonical order.
var Streams = []Stream{StreamSnapshots, StreamTimeline, StreamPreferences, StreamAlerts}

var streamNames = map[Stream]string{
	StreamSnapshots:   "snapshots",
	StreamTimeline:    "timeline",
	StreamPreferences: "preferences",
	StreamAlerts:      "alerts",
}

// String returns the wire name of the stream ("snapshots", "timeline",
// "preferences" or "alerts"). Unknown values render as "stream(N)".
func (s Stream) String() string {
	if name, ok := streamNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stream(%d)", uint8(s))
}

// Valid reports whether s is one of the four known streams.
func (s Stream) Valid() bool {
	_, ok := streamNames[s]
	return ok
}

// ParseStream converts a wire name into a [Stream].
// Returns [ErrInvalidStream] (wrapped) for any other input.
func ParseStream(name string) (Stream, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range streamNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStream, name)
}

// MarshalText implements encoding.TextMarshaler so streams can be used as
// JSON object keys.
func (s Stream) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStream, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stream) UnmarshalText(text []byte) error {
	parsed, err := ParseStream(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
