package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	// TestLogin and TestPassword are the credentials every environment sends
	TestLogin    = "tester@example.com"
	TestPassword = "hunter2"
)

// TestEnvironment provides an isolated test environment with its own TALLY_HOME
// and a fake time-tracking service.
type TestEnvironment struct {
	Service   *FakeService
	TallyHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp TALLY_HOME.
// The temp directory and the fake service are cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Service:   NewFakeService(tb),
		TallyHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out TALLY_* variables and points the CLI at the fake service.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+5+len(e.extraEnv))

	// Filter out existing TALLY_* variables and any we're overriding
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := e.extraEnv[key]; strings.HasPrefix(key, "TALLY_") || overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"TALLY_HOME="+e.TallyHome,
		"TALLY_DEBUG=false",
		"TALLY_BASE_URL="+e.Service.URL(),
		"TALLY_LOGIN="+TestLogin,
		"TALLY_PASSWORD="+TestPassword,
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the path to the settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.TallyHome, "settings.yml")
}

// CachePath returns the path to the task cache database.
func (e *TestEnvironment) CachePath() string {
	return filepath.Join(e.TallyHome, "cache.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
