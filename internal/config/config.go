package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	settingsFile = "settings.yml"
	cacheFile    = "cache.db"

	// SettingsPrefix marks settings keys that carry connection configuration
	SettingsPrefix = "harvest."
)

// Config holds connection and runtime configuration loaded from TALLY_* environment variables
// (TALLY_HOME, TALLY_BASE_URL, TALLY_MAX_LOG_FILES, ...).
type Config struct {
	Home string

	// Remote service
	BaseURL   string        `split_words:"true"` // overrides https://<subdomain>.harvestapp.com
	Login     string
	Password  string
	SSL       bool          `default:"true"`
	Subdomain string
	Timeout   time.Duration `default:"30s"`
	Token     string // OAuth access token, preferred over login/password

	// Logging
	Debug       bool   `default:"false"`
	DebugFile   string `split_words:"true"`
	MaxLogFiles int    `split_words:"true" default:"100"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("tally", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.Home == "" {
		cfg.Home = GetTallyHome()
	} else {
		cfg.Home = ExpandPath(cfg.Home)
	}
	return &cfg, nil
}

// ApplySettings fills connection fields left empty by the environment from harvest.* settings.
// Precedence: environment > settings file > defaults.
func (c *Config) ApplySettings(get func(key string) (string, bool)) {
	fill := func(field *string, key string) {
		if *field != "" {
			return
		}
		if v, ok := get(SettingsPrefix + key); ok {
			*field = v
		}
	}
	fill(&c.BaseURL, "base_url")
	fill(&c.Login, "login")
	fill(&c.Password, "password")
	fill(&c.Subdomain, "subdomain")
	fill(&c.Token, "token")
}

// SettingsPath returns $TALLY_HOME/settings.yml
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Home, settingsFile)
}

// CachePath returns $TALLY_HOME/cache.db
func (c *Config) CachePath() string {
	return filepath.Join(c.Home, cacheFile)
}

// Endpoint returns the service root URL, or "" when neither base URL nor subdomain is set
func (c *Config) Endpoint() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	if c.Subdomain == "" {
		return ""
	}
	scheme := "https"
	if !c.SSL {
		scheme = "http"
	}
	u := url.URL{Scheme: scheme, Host: c.Subdomain + ".harvestapp.com"}
	return u.String()
}

// Sanitized returns the connection settings with secrets masked, sorted by key
func (c *Config) Sanitized() []string {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "***"
	}
	values := map[string]string{
		"endpoint":  c.Endpoint(),
		"home":      c.Home,
		"login":     c.Login,
		"password":  mask(c.Password),
		"ssl":       fmt.Sprintf("%t", c.SSL),
		"subdomain": c.Subdomain,
		"timeout":   c.Timeout.String(),
		"token":     mask(c.Token),
	}

	lines := make([]string, 0, len(values))
	for k, v := range values {
		lines = append(lines, fmt.Sprintf("%s: %s", k, v))
	}
	sort.Strings(lines)
	return lines
}
