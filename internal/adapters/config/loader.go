// Package config provides the undup.yaml configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File represents the structure of the undup.yaml configuration file.
// Every setting has a flag-level override; a missing file is a zero config.
type File struct {
	Version string   `yaml:"version"`
	Sources []string `yaml:"sources"`
	Targets []string `yaml:"targets"`
	Cache   Cache    `yaml:"cache"`
}

// Cache configures the persistent hash cache.
type Cache struct {
	// Enabled defaults to true when unset.
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads the configuration file at path. A missing file yields an empty
// configuration rather than an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return &f, nil
}
