// Package artifact provides the artifact store gateway.
package artifact

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kodebase/kode/internal/domain"
)

// Store implements domain.ArtifactRepository over a directory tree of
// artifact files. Files are matched by name, never by content: an
// identifier maps to files named <id>*.yml (or .yaml) anywhere under the
// root.
type Store struct {
	root string
}

// New creates a new Store rooted at the artifacts directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Find resolves an identifier to exactly one artifact path by filename
// prefix. Zero matches yields ErrArtifactNotFound, more than one yields
// ErrAmbiguousArtifact with the candidates listed.
func (s *Store) Find(id string) (string, error) {
	matches, err := s.search(func(name string) bool {
		return strings.HasPrefix(name, id)
	})
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no artifact for %s under %s: %w", id, s.root, domain.ErrArtifactNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%d artifacts match %s (%s): %w", len(matches), id, strings.Join(matches, ", "), domain.ErrAmbiguousArtifact)
	}
}

// FindExact resolves an identifier to the artifact named <id>.yml or
// <id>.yaml.
func (s *Store) FindExact(id string) (string, error) {
	matches, err := s.search(func(name string) bool {
		return name == id
	})
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no artifact named %s.yml under %s: %w", id, s.root, domain.ErrArtifactNotFound)
	}
	return matches[0], nil
}

// search walks the artifacts root collecting files whose extension marks
// them as artifacts and whose stem satisfies match.
func (s *Store) search(match func(stem string) bool) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}
		if match(strings.TrimSuffix(d.Name(), ext)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search artifacts: %w", err)
	}
	return matches, nil
}

// Read returns the raw text of an artifact file.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read artifact: %w", err)
	}
	return string(data), nil
}

// Write replaces the raw text of an artifact file.
func (s *Store) Write(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat artifact: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// Load decodes an artifact's metadata and event log for display.
func (s *Store) Load(path string) (*domain.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a domain.Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", path, err)
	}
	return &a, nil
}

// Ensure Store implements domain.ArtifactRepository interface.
var _ domain.ArtifactRepository = (*Store)(nil)
