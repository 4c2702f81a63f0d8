package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
)

func TestLoad_MissingFileReturnsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.yml"))

	values, err := store.Load()

	require.NoError(t, err)
	assert.Empty(t, values)
	assert.NotNil(t, values)
}

func TestLoad_CorruptFileIsConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a mapping\n"), 0600))

	_, err := NewFileStore(path).Load()

	var configErr *domain.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, path, configErr.Path)
}

func TestLoad_UnreadablePathIsConfigError(t *testing.T) {
	dir := t.TempDir() // a directory cannot be read as a file

	_, err := NewFileStore(dir).Load()

	var configErr *domain.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestSaveLoad_RoundTripsArbitraryStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yml")
	store := NewFileStore(path)

	values := map[string]string{
		"task.dev":          "1234 5678",
		"task.meeting":      "1234 99 weekly sync: planning",
		"harvest.subdomain": "acme",
		"quoted":            `"double" and 'single'`,
		"multi":             "line one\nline two",
		"empty":             "",
		"yes":               "no",
		"number":            "0123",
		"key with: colon":   "- dash",
	}
	require.NoError(t, store.Save(values))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, values, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveLoad_RoundTripsYAMLSpecialStrings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "merge key", key: "<<", value: "10 2"},
		{name: "tilde key and value", key: "~", value: "~"},
		{name: "null key and value", key: "null", value: "null"},
		{name: "empty key", key: "", value: "empty"},
		{name: "boolean words", key: "true", value: "off"},
		{name: "multi-line value", key: "task.notes", value: "first\n\n  second\r\n"},
		{name: "invalid UTF-8 value", key: "task.raw", value: "ok\xff\xfe"},
		{name: "invalid UTF-8 key", key: "bad\xffkey", value: "v"},
		{name: "anchor and alias markers", key: "&a", value: "*a"},
		{name: "comment marker", key: "#hash", value: "# not a comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewFileStore(filepath.Join(t.TempDir(), "settings.yml"))
			values := map[string]string{tt.key: tt.value, "task.dev": "10 2"}

			require.NoError(t, store.Save(values))
			loaded, err := store.Load()

			require.NoError(t, err)
			assert.Equal(t, values, loaded)
		})
	}
}

func TestSave_WritesQuotedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")

	require.NoError(t, NewFileStore(path).Save(map[string]string{"<<": "x", "task.dev": "10 2"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"<<\": \"x\"\n\"task.dev\": \"10 2\"\n", string(data))
}

func TestSave_ReplacesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	store := NewFileStore(path)

	require.NoError(t, store.Save(map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, store.Save(map[string]string{"b": "3"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "3"}, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not be left behind")
}
