package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledReturnsNoPath(t *testing.T) {
	path, err := Initialize(Options{})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_DebugFileReceivesLogs(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{DebugFile: logFile})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Initialize(Options{}) })

	assert.Equal(t, logFile, path)
	Logger.Info("hello from test", "key", "value")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestInitialize_RotatesOldLogs(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"a.log", "b.log", "c.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := time.Now().Add(time.Duration(i-10) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}

	path, err := Initialize(Options{Debug: true, LogDir: dir, MaxLogFiles: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Initialize(Options{}) })

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.NoFileExists(t, filepath.Join(dir, "a.log"))
	assert.NoFileExists(t, filepath.Join(dir, "b.log"))
	assert.FileExists(t, path)
}
