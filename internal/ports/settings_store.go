package ports

// SettingsStore persists the flat settings mapping as a whole
type SettingsStore interface {
	// Load returns the stored mapping, or an empty one when nothing is stored yet
	Load() (map[string]string, error)

	// Save replaces the stored mapping with values
	Save(values map[string]string) error
}
