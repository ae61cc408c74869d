package changelog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a CHANGELOG.yaml from the given path. A missing file is not an
// error: it yields an empty document named after the project, so the first
// release of a repository needs no setup step.
func Load(path, project string) (*Document, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Document{Project: project}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	doc, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc.Project == "" {
		doc.Project = project
	}
	return doc, nil
}

// LoadFromReader parses a CHANGELOG.yaml document from an io.Reader.
func LoadFromReader(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding changelog YAML: %w", err)
	}
	return &doc, nil
}

// Save writes the document as YAML to path, creating parent directories as
// needed. The write goes through a temp file and rename so readers never
// observe a torn document.
func Save(doc *Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding changelog YAML: %w", err)
	}
	return writeAtomic(path, data)
}

// SaveMarkdown renders the document and writes the markdown rendition.
func SaveMarkdown(doc *Document, path string) error {
	md, err := RenderMarkdownString(doc)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	return writeAtomic(path, []byte(md))
}

// Snapshot captures the current bytes of a changelog artifact so a failed
// release can put them back. A missing file snapshots as (nil, false, nil).
func Snapshot(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("snapshotting %s: %w", path, err)
	}
	return data, true, nil
}

// Restore puts a snapshot back. A snapshot of a file that did not exist
// removes whatever was written in the meantime.
func Restore(path string, data []byte, existed bool) error {
	if !existed {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		return nil
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
