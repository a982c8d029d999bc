package prefs

import (
	"encoding/json"
	"fmt"
)

// Key is the record name under which settings are stored.
const Key = "numberGameSettings"

// KV is the minimal key-value backend the preference store needs.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Store reads and writes Settings as one JSON record.
type Store struct {
	kv KV
}

// NewStore wraps a key-value backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load returns the saved settings, or Default when none are saved.
// A record that cannot be decoded yields Default together with an error so
// callers can warn and continue.
func (s *Store) Load() (Settings, error) {
	data, ok, err := s.kv.Get(Key)
	if err != nil {
		return Default(), fmt.Errorf("prefs: cannot load settings: %w", err)
	}
	if !ok {
		return Default(), nil
	}

	// Fields missing from the record keep their defaults
	settings := Default()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("prefs: cannot decode settings: %w", err)
	}
	return settings.Normalize(), nil
}

// Save writes the full settings record.
func (s *Store) Save(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("prefs: cannot encode settings: %w", err)
	}
	if err := s.kv.Put(Key, data); err != nil {
		return fmt.Errorf("prefs: cannot save settings: %w", err)
	}
	return nil
}

// Reset removes the saved record so the next Load returns defaults.
func (s *Store) Reset() error {
	if err := s.kv.Delete(Key); err != nil {
		return fmt.Errorf("prefs: cannot reset settings: %w", err)
	}
	return nil
}
