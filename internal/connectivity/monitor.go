// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connectivity tracks whether the delivery endpoint is reachable and
// reports transitions to the sync manager.
package connectivity

import (
	"context"
	"time"

	"github.com/MKhiriev/go-scene-outbox/internal/adapter"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
)

// OnlineSetter receives the probed connectivity.
type OnlineSetter interface {
	SetOnline(ctx context.Context, online bool)
	IsOnline() bool
}

// Monitor probes the endpoint on a fixed interval. The first probe runs as
// soon as Run starts.
type Monitor struct {
	checker  adapter.HealthChecker
	target   OnlineSetter
	interval time.Duration
	logger   *logger.Logger
}

func NewMonitor(checker adapter.HealthChecker, target OnlineSetter, interval time.Duration, logger *logger.Logger) *Monitor {
	return &Monitor{
		checker:  checker,
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info().Str("func", "Monitor.Run").Dur("interval", m.interval).Msg("connectivity monitor started")

	m.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}

// Probe checks the endpoint once and reports the result.
func (m *Monitor) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.checker.Check(probeCtx)
	if ctx.Err() != nil {
		return m.target.IsOnline()
	}

	online := err == nil
	if online != m.target.IsOnline() {
		event := m.logger.Info()
		if !online {
			event = m.logger.Warn().Err(err)
		}
		event.Str("func", "Monitor.Probe").Bool("online", online).Msg("connectivity changed")
	}

	m.target.SetOnline(ctx, online)
	return online
}
