// Package changelog provides YAML-first changelog management for relvet.
//
// This package implements:
//   - building release-note groups from classified conventional commits
//   - CHANGELOG.yaml persistence (the durable source of truth)
//   - deterministic Markdown generation from the YAML document
//   - colored terminal previews for the release confirmation step
//
// Rendering is byte-deterministic: identical input always yields identical
// output, so generated changelogs diff cleanly across releases.
package changelog
