package config

// Defaults returns the default configuration values keyed by config name.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"project":            "",
		"release_branches":   []string{"main", "master"},
		"tag_prefix":         "v",
		"changelog_file":     "CHANGELOG.yaml",
		"changelog_markdown": "CHANGELOG.md",
		"skip_confirmations": false,
		"plain_output":       false,
	}
}

// DefaultConfigTemplate returns a commented config template written by
// `relvet init`, documenting every available option.
func DefaultConfigTemplate() string {
	return `# Relvet Configuration

# Name used in changelog headers (default: repository directory name)
project: ""

# Branches a release may be cut from; anything else needs an explicit override
release_branches:
  - main
  - master

# Prefix for release tags (v1.2.3)
tag_prefix: v

# Changelog artifacts: YAML is the source of truth, markdown is generated
changelog_file: CHANGELOG.yaml
changelog_markdown: CHANGELOG.md

# Skip interactive confirmation prompts (also RELVET_YES=1)
skip_confirmations: false

# Disable colors and icons in terminal output
plain_output: false
`
}
