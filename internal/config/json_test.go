package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"device_id":     "phone",
			"device_secret": "k",
			"interactive":   true,
			"log_file":      "c.log",
		},
		"storage": map[string]any{
			"db":       map[string]any{"dsn": "q.db"},
			"fallback": map[string]any{"path": "fb.json"},
		},
		"server":  map[string]any{"http_address": "localhost:7272"},
		"adapter": map[string]any{"http_address": "http://sync", "request_timeout": "3s", "health_path": "/ping"},
		"workers": map[string]any{
			"sync_schedule":       "@every 1m",
			"probe_interval":      "10s",
			"control_timeout":     float64(time.Second),
			"manual_sync_timeout": "1m",
		},
		"sync": map[string]any{"auto_sync": true, "wifi_only": true, "battery_saver_sync": true},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "phone", cfg.App.DeviceID)
	assert.Equal(t, "k", cfg.App.DeviceSecret)
	assert.True(t, cfg.App.Interactive)
	assert.Equal(t, "c.log", cfg.App.LogFile)
	assert.Equal(t, "q.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "fb.json", cfg.Storage.Fallback.Path)
	assert.Equal(t, "localhost:7272", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://sync", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/ping", cfg.Adapter.HealthPath)
	assert.Equal(t, "@every 1m", cfg.Workers.SyncSchedule)
	assert.Equal(t, 10*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, time.Second, cfg.Workers.ControlTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.ManualSyncTimeout)
	assert.True(t, cfg.Sync.WiFiOnly)
	assert.True(t, cfg.Sync.BatterySaverSync)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"workers": map[string]any{"probe_interval": "whenever"},
	})

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var d Duration
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, Duration(90*time.Second), d)
}
