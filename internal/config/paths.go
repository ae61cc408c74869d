package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/relvet/config.yml
// - macOS: ~/Library/Application Support/relvet/config.yml
// - Windows: %APPDATA%\relvet\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "relvet", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .relvet/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".relvet", "config.yml")
}

// LegacyProjectConfigPath returns the path to the legacy project-level JSON
// config file, kept readable for migration.
func LegacyProjectConfigPath() string {
	return filepath.Join(".relvet", "config.json")
}
