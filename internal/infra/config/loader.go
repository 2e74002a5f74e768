// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/kodebase/kode/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from the repository's .kodebase directory.
type Loader struct {
	kodebaseDir string
}

// NewLoader creates a new Loader.
func NewLoader(kodebaseDir string) *Loader {
	return &Loader{kodebaseDir: kodebaseDir}
}

// fileConfig mirrors the TOML shape of config.toml. Empty fields fall
// back to defaults so a partial file is valid.
type fileConfig struct {
	Workflow struct {
		MainBranch string `toml:"main_branch"`
		Remote     string `toml:"remote"`
	} `toml:"workflow"`
	Artifacts struct {
		Root string `toml:"root"`
	} `toml:"artifacts"`
	Bridge struct {
		Command string `toml:"command"`
	} `toml:"bridge"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load returns the repository configuration merged over defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	path := filepath.Join(l.kodebaseDir, domain.ConfigFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if file.Workflow.MainBranch != "" {
		cfg.Workflow.MainBranch = file.Workflow.MainBranch
	}
	if file.Workflow.Remote != "" {
		cfg.Workflow.Remote = file.Workflow.Remote
	}
	if file.Artifacts.Root != "" {
		cfg.Artifacts.Root = file.Artifacts.Root
	}
	if file.Bridge.Command != "" {
		cfg.Bridge.Command = file.Bridge.Command
	}
	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}

	return cfg, nil
}
