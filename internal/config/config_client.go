package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DeviceID identifies the device in delivery requests.
	DeviceID string
	// DeviceSecret signs the device bearer token.
	DeviceSecret string
	// Interactive starts the terminal status screen.
	Interactive bool
	// LogFile is the rotating log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the delivery layer.
type ClientAdapter struct {
	// HTTPAddress is the delivery endpoint base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound deliveries.
	RequestTimeout time.Duration
	// HealthPath is the connectivity probe path.
	HealthPath string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file used by the durable queue store.
	DSN string
}

// ClientFallback contains settings of the degraded-mode store.
type ClientFallback struct {
	// Path is the JSON file backing the fallback key/value store.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB       ClientDB
	Fallback ClientFallback
}

// ClientServer holds the local control API settings.
type ClientServer struct {
	HTTPAddress string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncSchedule      string
	ProbeInterval     time.Duration
	ControlTimeout    time.Duration
	ManualSyncTimeout time.Duration
}

// ClientSync holds default sync preferences.
type ClientSync struct {
	AutoSync         bool
	WiFiOnly         bool
	BatterySaverSync bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Server  ClientServer
	Workers ClientWorkers
	Sync    ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	if clientCfg.App.DeviceID == "" {
		// the hostname is a stable enough identity for a single-user device
		if host, hostErr := os.Hostname(); hostErr == nil {
			clientCfg.App.DeviceID = host
		}
	}

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a merged [StructuredConfig] onto the client view
// without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceID:     cfg.App.DeviceID,
			DeviceSecret: cfg.App.DeviceSecret,
			Interactive:  cfg.App.Interactive,
			LogFile:      cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HealthPath:     cfg.Adapter.HealthPath,
		},
		Storage: ClientStorage{
			DB:       ClientDB{DSN: cfg.Storage.DB.DSN},
			Fallback: ClientFallback{Path: cfg.Storage.Fallback.Path},
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
		Workers: ClientWorkers{
			SyncSchedule:      cfg.Workers.SyncSchedule,
			ProbeInterval:     cfg.Workers.ProbeInterval,
			ControlTimeout:    cfg.Workers.ControlTimeout,
			ManualSyncTimeout: cfg.Workers.ManualSyncTimeout,
		},
		Sync: ClientSync{
			AutoSync:         cfg.Sync.AutoSync,
			WiFiOnly:         cfg.Sync.WiFiOnly,
			BatterySaverSync: cfg.Sync.BatterySaverSync,
		},
	}
}
