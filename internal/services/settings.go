package services

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	"tally/internal/logging"
	"tally/internal/ports"
)

// SettingsService owns the settings mapping for the life of the process.
// Every mutation is flushed to the store as a whole before returning.
type SettingsService struct {
	store  ports.SettingsStore
	values map[string]string
}

// NewSettingsService loads the settings once from store
func NewSettingsService(store ports.SettingsStore) (*SettingsService, error) {
	values, err := store.Load()
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = make(map[string]string)
	}

	logging.Logger.Debug("Settings loaded", "keys", len(values))
	return &SettingsService{
		store:  store,
		values: values,
	}, nil
}

// Get returns the value stored under key
func (s *SettingsService) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and flushes
func (s *SettingsService) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("setting key must not be empty")
	}

	next := maps.Clone(s.values)
	next[key] = value
	if err := s.flush(next); err != nil {
		return err
	}

	logging.Logger.Info("Setting stored", "key", key)
	return nil
}

// Unset removes key and flushes. Removing an absent key is not an error.
func (s *SettingsService) Unset(key string) error {
	next := maps.Clone(s.values)
	delete(next, key)
	if err := s.flush(next); err != nil {
		return err
	}

	logging.Logger.Info("Setting removed", "key", key)
	return nil
}

// All returns a snapshot of every setting
func (s *SettingsService) All() map[string]string {
	return maps.Clone(s.values)
}

// Keys returns the setting keys in sorted order
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithPrefix returns the settings whose key starts with prefix, prefix stripped
func (s *SettingsService) WithPrefix(prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range s.values {
		if name, ok := strings.CutPrefix(k, prefix); ok {
			out[name] = v
		}
	}
	return out
}

func (s *SettingsService) flush(next map[string]string) error {
	if err := s.store.Save(next); err != nil {
		logging.Logger.Error("Failed to save settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.values = next
	return nil
}
