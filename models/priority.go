// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Priority is the severity of an alert. Only items of the alerts stream carry
// a priority; for every other stream it stays [PriorityNone].
//
// Values are ordered so that a higher number drains first.
type Priority uint8

const (
	PriorityNone Priority = iota
	PrioritySafe
	PriorityWarning
	PriorityDanger
)

var priorityNames = map[Priority]string{
	PriorityNone:    "",
	PrioritySafe:    "safe",
	PriorityWarning: "warning",
	PriorityDanger:  "danger",
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("priority(%d)", uint8(p))
}

// ParsePriority converts "safe", "warning" or "danger" into a [Priority].
// An empty string yields [PriorityNone].
func ParsePriority(name string) (Priority, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range priorityNames {
		if n == name {
			return p, nil
		}
	}
	return PriorityNone, fmt.Errorf("%w: %q", ErrInvalidPriority, name)
}

func (p Priority) MarshalText() ([]byte, error) {
	if _, ok := priorityNames[p]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
