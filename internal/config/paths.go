package config

import (
	"os"
	"path/filepath"
)

// GetTallyHome returns TALLY_HOME or ~/.tally
func GetTallyHome() string {
	home := os.Getenv("TALLY_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tally"
		}
		return filepath.Join(homeDir, ".tally")
	}
	return ExpandPath(home)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
