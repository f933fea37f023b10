package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted both as strings ("30s") and as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		DeviceID     string `json:"device_id"`
		DeviceSecret string `json:"device_secret"`
		Interactive  bool   `json:"interactive"`
		LogFile      string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Fallback struct {
			Path string `json:"path"`
		} `json:"fallback,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		HealthPath     string   `json:"health_path"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncSchedule      string   `json:"sync_schedule"`
		ProbeInterval     Duration `json:"probe_interval"`
		ControlTimeout    Duration `json:"control_timeout"`
		ManualSyncTimeout Duration `json:"manual_sync_timeout"`
	} `json:"workers,omitempty"`

	Sync struct {
		AutoSync         bool `json:"auto_sync"`
		WiFiOnly         bool `json:"wifi_only"`
		BatterySaverSync bool `json:"battery_saver_sync"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DeviceID:     jsonCfg.App.DeviceID,
			DeviceSecret: jsonCfg.App.DeviceSecret,
			Interactive:  jsonCfg.App.Interactive,
			LogFile:      jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB:       DB{DSN: jsonCfg.Storage.DB.DSN},
			Fallback: Fallback{Path: jsonCfg.Storage.Fallback.Path},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			HealthPath:     jsonCfg.Adapter.HealthPath,
		},
		Workers: Workers{
			SyncSchedule:      jsonCfg.Workers.SyncSchedule,
			ProbeInterval:     time.Duration(jsonCfg.Workers.ProbeInterval),
			ControlTimeout:    time.Duration(jsonCfg.Workers.ControlTimeout),
			ManualSyncTimeout: time.Duration(jsonCfg.Workers.ManualSyncTimeout),
		},
		Sync: Sync{
			AutoSync:         jsonCfg.Sync.AutoSync,
			WiFiOnly:         jsonCfg.Sync.WiFiOnly,
			BatterySaverSync: jsonCfg.Sync.BatterySaverSync,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
