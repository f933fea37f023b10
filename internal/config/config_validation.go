// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every consumer. Client-specific rules live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.SyncSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Workers.SyncSchedule); err != nil {
			return fmt.Errorf("%w: sync schedule %q: %v", ErrInvalidWorkerConfigs, cfg.Workers.SyncSchedule, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Fallback.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SyncSchedule == "" ||
		cfg.Workers.ProbeInterval <= 0 ||
		cfg.Workers.ControlTimeout <= 0 ||
		cfg.Workers.ManualSyncTimeout < cfg.Workers.ControlTimeout {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DeviceSecret == "" || cfg.App.DeviceID == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
