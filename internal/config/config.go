// Package config provides hierarchical configuration management for relvet
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.relvet/config.yml) > user config (~/.config/relvet/config.yml)
// > defaults. Legacy JSON project configs are still read, with a migration
// warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the relvet CLI tool configuration.
type Configuration struct {
	// Project names the artifact in changelog headers. Empty means the
	// repository directory name is used.
	Project string `koanf:"project"`

	// ReleaseBranches lists the branches a release may be cut from.
	// Releasing from any other branch requires an explicit override.
	ReleaseBranches []string `koanf:"release_branches"`

	// TagPrefix is prepended to the version when naming release tags.
	TagPrefix string `koanf:"tag_prefix"`

	// ChangelogFile is the durable YAML changelog artifact.
	ChangelogFile string `koanf:"changelog_file"`

	// ChangelogMarkdown is the generated markdown rendition.
	ChangelogMarkdown string `koanf:"changelog_markdown"`

	// SkipConfirmations suppresses interactive prompts (also RELVET_YES).
	SkipConfirmations bool `koanf:"skip_confirmations"`

	// PlainOutput disables colors and icons in terminal output.
	PlainOutput bool `koanf:"plain_output"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .relvet/config.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if userPath, err := UserConfigPath(); err == nil && fileExists(userPath) {
		if err := k.Load(file.Provider(userPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading user config %s: %w", userPath, err)
		}
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("RELVET_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	return finalize(k)
}

// loadProjectConfig loads project-level config, YAML preferred. A legacy
// .relvet/config.json is still honored but warns about migration.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	switch {
	case fileExists(yamlPath):
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading project config %s: %w", yamlPath, err)
		}
		if fileExists(legacyPath) && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n", legacyPath, yamlPath)
		}
	case fileExists(legacyPath):
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Move it to %s in YAML format.\n\n", yamlPath)
		}
	}
	return nil
}

// finalize unmarshals and validates the merged configuration.
func finalize(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if os.Getenv("RELVET_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// validate rejects configurations that would make release behavior
// undefined rather than merely unusual.
func validate(cfg *Configuration) error {
	if len(cfg.ReleaseBranches) == 0 {
		return fmt.Errorf("release_branches must name at least one branch")
	}
	for _, b := range cfg.ReleaseBranches {
		if strings.TrimSpace(b) == "" {
			return fmt.Errorf("release_branches contains an empty branch name")
		}
	}
	if cfg.ChangelogFile == "" {
		return fmt.Errorf("changelog_file must not be empty")
	}
	if cfg.ChangelogMarkdown == "" {
		return fmt.Errorf("changelog_markdown must not be empty")
	}
	return nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: RELVET_TAG_PREFIX -> tag_prefix
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELVET_"))
}
