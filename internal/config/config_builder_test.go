package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{DeviceID: "phone-1"}},
		&StructuredConfig{App: App{DeviceSecret: "secret"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "phone-1", cfg.App.DeviceID)
	assert.Equal(t, "secret", cfg.App.DeviceSecret)
}

// TestBuild_LaterSourceWins verifies that a later non-zero value overrides
// an earlier one.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "env.db"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "flag.db"}}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
}

func TestBuild_InvalidScheduleFailsValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{SyncSchedule: "every now and then"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_DEVICE_ID", "env-device")
	t.Setenv("ADAPTER_ADDRESS", "http://sync.example")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-device", b.configs[0].App.DeviceID)
	assert.Equal(t, "http://sync.example", b.configs[0].Adapter.HTTPAddress)
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("WORKERS_PROBE_INTERVAL", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-does-not-exist"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

// TestGetStructuredConfig_PriorityOrder verifies env < flags < json.
func TestGetStructuredConfig_PriorityOrder(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"workers": map[string]any{"probe_interval": "45s"},
	})
	t.Setenv("STORAGE_DB_DSN", "env.db")
	t.Setenv("WORKERS_PROBE_INTERVAL", "10s")

	cfg, err := GetStructuredConfig([]string{"-d", "flag.db", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, "@every 15m", cfg.Workers.SyncSchedule)
	assert.True(t, cfg.Sync.AutoSync)
}

// ── client view ───────────────────────────────────────────────────────────────

func validStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{DeviceID: "phone-1", DeviceSecret: "s3cret"},
		Storage: Storage{DB: DB{DSN: "outbox.db"}, Fallback: Fallback{Path: "fallback.json"}},
		Server:  Server{HTTPAddress: "localhost:7070"},
		Adapter: Adapter{HTTPAddress: "http://sync.example", RequestTimeout: time.Second, HealthPath: "/api/health"},
		Workers: Workers{
			SyncSchedule:      "@every 15m",
			ProbeInterval:     30 * time.Second,
			ControlTimeout:    2 * time.Second,
			ManualSyncTimeout: 2 * time.Minute,
		},
		Sync: Sync{AutoSync: true},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no fallback path", mutate: func(c *StructuredConfig) { c.Storage.Fallback.Path = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no endpoint", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no server address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero probe", mutate: func(c *StructuredConfig) { c.Workers.ProbeInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "manual shorter than control", mutate: func(c *StructuredConfig) { c.Workers.ManualSyncTimeout = time.Second }, wantErr: ErrInvalidWorkerConfigs},
		{name: "no secret", mutate: func(c *StructuredConfig) { c.App.DeviceSecret = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			err := NewClientConfig(cfg).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
