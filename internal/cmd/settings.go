package cmd

import (
	"strings"

	"tally/internal/logging"
	"tally/internal/theme"
)

// SetCmd prints every setting, or stores one
type SetCmd struct {
	Key   string   `arg:"" optional:"" help:"Setting key, e.g. task.dev"`
	Value []string `arg:"" optional:"" passthrough:"" help:"Value; multiple words are joined with spaces"`
}

// Run executes the set command
func (s *SetCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings

	if s.Key == "" {
		color := cli.colorful()
		for _, key := range settings.Keys() {
			value, _ := settings.Get(key)
			cli.printf("%s: %s\n", theme.Paint(color, theme.KeyStyle, key), value)
		}
		return nil
	}

	logging.Logger.Info("Executing set command", "key", s.Key)
	return settings.Set(s.Key, strings.Join(s.Value, " "))
}

// UnsetCmd removes a setting
type UnsetCmd struct {
	Key string `arg:"" help:"Setting key to remove"`
}

// Run executes the unset command
func (u *UnsetCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing unset command", "key", u.Key)
	return cli.Container.Settings.Unset(u.Key)
}

// ConfigCmd shows the effective connection configuration with secrets masked
type ConfigCmd struct{}

// Run executes the config command
func (c *ConfigCmd) Run(cli *CLI) error {
	color := cli.colorful()
	for _, line := range cli.Container.Config.Sanitized() {
		key, value, _ := strings.Cut(line, ": ")
		if value == "***" {
			value = theme.Paint(color, theme.SecretStyle, value)
		}
		cli.printf("%s: %s\n", theme.Paint(color, theme.KeyStyle, key), value)
	}
	return nil
}
