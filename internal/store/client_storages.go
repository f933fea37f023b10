package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-scene-outbox/internal/config"
	"github.com/MKhiriev/go-scene-outbox/internal/logger"
	"github.com/MKhiriev/go-scene-outbox/models"
)

// ClientStorages groups every client-side store into a single value that can
// be handed to the workers and the service layer.
type ClientStorages struct {
	// Durable is the SQLite-backed queue owned by the background worker.
	Durable QueueStore

	// Fallback is the degraded-mode queue used by the foreground when the
	// worker cannot be reached.
	Fallback QueueStore

	// KeyValue backs Fallback and Preferences.
	KeyValue KeyValue

	// Preferences persists the user's sync preferences.
	Preferences *PreferencesStore

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens the SQLite file at cfg.DB.DSN, creating it if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the fallback key/value file at cfg.Fallback.Path.
//
// defaults are returned by Preferences until the user stores their own.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, defaults models.SyncPreferences, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv, err := openFallbackKeyValue(cfg.Fallback, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ClientStorages{
		Durable:     NewSQLiteQueueStore(db, logger),
		Fallback:    NewFallbackQueueStore(kv, logger),
		KeyValue:    kv,
		Preferences: NewPreferencesStore(kv, defaults),
		db:          db,
	}, nil
}

// NewFallbackStorages opens only the fallback key/value file. It is used when
// the durable database cannot be opened, in which case Durable stays nil and
// the client runs on the fallback queue alone.
func NewFallbackStorages(cfg config.ClientStorage, defaults models.SyncPreferences, logger *logger.Logger) (*ClientStorages, error) {
	kv, err := openFallbackKeyValue(cfg.Fallback, logger)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Fallback:    NewFallbackQueueStore(kv, logger),
		KeyValue:    kv,
		Preferences: NewPreferencesStore(kv, defaults),
	}, nil
}

func openFallbackKeyValue(cfg config.ClientFallback, logger *logger.Logger) (KeyValue, error) {
	kv, err := NewFileKeyValue(cfg.Path)
	if err == nil {
		return kv, nil
	}
	if !errors.Is(err, ErrCorruptedStore) {
		return nil, fmt.Errorf("fallback store error: %w", err)
	}

	// an unreadable fallback file must not keep the client from starting
	logger.Warn().Err(err).Str("path", cfg.Path).Msg("fallback store corrupted, starting empty")
	kv, err = resetFileKeyValue(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("fallback store reset: %w", err)
	}
	return kv, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
