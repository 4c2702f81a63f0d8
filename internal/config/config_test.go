package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TALLY_HOME", home)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.True(t, cfg.SSL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, filepath.Join(home, "settings.yml"), cfg.SettingsPath())
	assert.Equal(t, filepath.Join(home, "cache.db"), cfg.CachePath())
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("TALLY_HOME", t.TempDir())
	t.Setenv("TALLY_SUBDOMAIN", "acme")
	t.Setenv("TALLY_SSL", "false")
	t.Setenv("TALLY_TOKEN", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Subdomain)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "http://acme.harvestapp.com", cfg.Endpoint())
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{"base url wins", Config{BaseURL: "http://localhost:8080/", Subdomain: "acme", SSL: true}, "http://localhost:8080"},
		{"subdomain https", Config{Subdomain: "acme", SSL: true}, "https://acme.harvestapp.com"},
		{"nothing configured", Config{SSL: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.Endpoint())
		})
	}
}

func TestApplySettings_EnvironmentTakesPrecedence(t *testing.T) {
	cfg := &Config{Subdomain: "from-env"}
	settings := map[string]string{
		"harvest.subdomain": "from-settings",
		"harvest.login":     "me@example.com",
	}

	cfg.ApplySettings(func(key string) (string, bool) {
		v, ok := settings[key]
		return v, ok
	})

	assert.Equal(t, "from-env", cfg.Subdomain)
	assert.Equal(t, "me@example.com", cfg.Login)
	assert.Empty(t, cfg.Password)
}

func TestSanitized_MasksSecrets(t *testing.T) {
	cfg := &Config{Login: "me", Password: "hunter2", Token: "abc", SSL: true, Subdomain: "acme"}

	lines := cfg.Sanitized()

	assert.Contains(t, lines, "password: ***")
	assert.Contains(t, lines, "token: ***")
	assert.Contains(t, lines, "login: me")
	for _, line := range lines {
		assert.NotContains(t, line, "hunter2")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.tally", ExpandPath("~/.tally"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
