package settings

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"tally/internal/domain"
	"tally/internal/logging"
	"tally/internal/ports"
)

// FileStore keeps settings as a YAML mapping of strings in a single file
type FileStore struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.SettingsStore = (*FileStore)(nil)

// NewFileStore creates a FileStore backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the settings file. A missing file yields an empty mapping.
func (s *FileStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Logger.Debug("Settings file not found, starting empty", "path", s.path)
			return map[string]string{}, nil
		}
		return nil, &domain.ConfigError{Path: s.path, Err: err}
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, &domain.ConfigError{Path: s.path, Err: err}
	}
	if values == nil {
		values = map[string]string{}
	}

	logging.Logger.Debug("Settings loaded", "path", s.path, "keys", len(values))
	return values, nil
}

// Save replaces the settings file with values.
// The mapping is written to a temporary file in the same directory and renamed over the old one.
func (s *FileStore) Save(values map[string]string) error {
	if values == nil {
		values = map[string]string{}
	}

	data, err := yaml.Marshal(settingsNode(values))
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.yml")
	if err != nil {
		return fmt.Errorf("failed to create temporary settings file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set settings file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	logging.Logger.Debug("Settings saved", "path", s.path, "keys", len(values))
	return nil
}

// settingsNode renders values as a mapping of double-quoted strings so that
// keys such as "<<", "~" or "null" reload as themselves.
func settingsNode(values map[string]string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range slices.Sorted(maps.Keys(values)) {
		node.Content = append(node.Content, stringScalar(key), stringScalar(values[key]))
	}
	return node
}

func stringScalar(value string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: value}
	// Untagged invalid UTF-8 is written as !!binary, which decodes back into the same string
	if utf8.ValidString(value) {
		node.Tag = "!!str"
	}
	return node
}
