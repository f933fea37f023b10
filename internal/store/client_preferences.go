package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-scene-outbox/models"
)

// PreferencesKey is the key/value key holding the persisted sync preferences.
const PreferencesKey = "sync_preferences"

// PreferencesStore persists [models.SyncPreferences] in a [KeyValue].
type PreferencesStore struct {
	kv       KeyValue
	defaults models.SyncPreferences
}

func NewPreferencesStore(kv KeyValue, defaults models.SyncPreferences) *PreferencesStore {
	return &PreferencesStore{kv: kv, defaults: defaults}
}

// Load returns the stored preferences, or the defaults when nothing is
// stored or the stored value cannot be read.
func (p *PreferencesStore) Load() models.SyncPreferences {
	raw, ok, err := p.kv.Get(PreferencesKey)
	if err != nil || !ok {
		return p.defaults
	}

	var prefs models.SyncPreferences
	if err = json.Unmarshal([]byte(raw), &prefs); err != nil {
		return p.defaults
	}
	return prefs
}

func (p *PreferencesStore) Save(prefs models.SyncPreferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode sync preferences: %w", err)
	}
	if err = p.kv.Set(PreferencesKey, string(payload)); err != nil {
		return fmt.Errorf("write sync preferences: %w", err)
	}
	return nil
}
