// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the outbox
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// App holds device identity and client runtime switches.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the durable queue database and the
	// fallback key/value file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the address of the local control API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the downstream delivery endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker timings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the default sync preferences used until the user stores
	// their own.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceID identifies this device to the delivery endpoint.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// DeviceSecret signs the short-lived device bearer token attached to
	// every delivery. Must be kept confidential.
	// Env: APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`

	// Interactive starts the terminal status screen.
	// Env: APP_INTERACTIVE
	Interactive bool `env:"INTERACTIVE"`

	// LogFile is the rotating client log path.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE" envDefault:"logs/client.log"`
}

// Storage groups the configuration for both queue backends.
type Storage struct {
	// DB holds the durable SQLite store settings.
	DB DB `envPrefix:"DB_"`

	// Fallback holds the synchronous key/value store settings.
	Fallback Fallback `envPrefix:"FALLBACK_"`
}

// DB holds connection settings for the durable queue database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" envDefault:"outbox.db"`
}

// Fallback holds settings for the degraded-mode store.
type Fallback struct {
	// Path is the JSON file backing the fallback key/value store.
	// Env: STORAGE_FALLBACK_PATH
	Path string `env:"PATH" envDefault:"outbox-fallback.json"`
}

// Server holds settings of the local control API.
type Server struct {
	// HTTPAddress is the "host:port" the local API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:7070"`
}

// Adapter holds the delivery endpoint configuration.
type Adapter struct {
	// HTTPAddress is the base URL of the delivery endpoint.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single delivery request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// HealthPath is probed to decide whether the device is online.
	// Env: ADAPTER_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH" envDefault:"/api/health"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncSchedule is the cron spec of the periodic drain trigger.
	// Env: WORKERS_SYNC_SCHEDULE
	SyncSchedule string `env:"SYNC_SCHEDULE" envDefault:"@every 15m"`

	// ProbeInterval is how often connectivity is probed.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL" envDefault:"30s"`

	// ControlTimeout bounds routine control channel requests.
	// Env: WORKERS_CONTROL_TIMEOUT
	ControlTimeout time.Duration `env:"CONTROL_TIMEOUT" envDefault:"2s"`

	// ManualSyncTimeout bounds a "Sync Now" round trip.
	// Env: WORKERS_MANUAL_SYNC_TIMEOUT
	ManualSyncTimeout time.Duration `env:"MANUAL_SYNC_TIMEOUT" envDefault:"2m"`
}

// Sync holds the default sync preferences.
type Sync struct {
	// Env: SYNC_AUTO
	AutoSync bool `env:"AUTO" envDefault:"true"`
	// Env: SYNC_WIFI_ONLY
	WiFiOnly bool `env:"WIFI_ONLY"`
	// Env: SYNC_BATTERY_SAVER
	BatterySaverSync bool `env:"BATTERY_SAVER"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
