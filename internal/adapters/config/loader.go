// Package config loads the optional icws.yaml workspace configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only configuration schema version understood by the loader.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileConfigLoader reading domain.ConfigFileName.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName, logger: logger}
}

// Workspacefile represents the structure of the icws.yaml configuration file.
type Workspacefile struct {
	Version      string   `yaml:"version"`
	Packages     string   `yaml:"packages"`
	Registry     string   `yaml:"registry"`
	Dependencies string   `yaml:"dependencies"`
	BuildFile    string   `yaml:"buildFile"`
	Fetch        FetchDTO `yaml:"fetch"`
}

// FetchDTO groups the fetch settings.
type FetchDTO struct {
	Parallelism int `yaml:"parallelism"`
}

// Load reads the configuration of the workspace rooted at root.
// A missing file yields the default layout.
func (l *FileConfigLoader) Load(root string) (domain.Layout, error) {
	path := filepath.Join(root, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		if l.logger != nil {
			l.logger.Debug("no " + l.Filename + " found, using default layout")
		}
		return domain.DefaultLayout(root), nil
	}
	if err != nil {
		return domain.Layout{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	return Parse(root, data)
}

// Parse converts raw YAML into a layout rooted at root.
func Parse(root string, data []byte) (domain.Layout, error) {
	var wf Workspacefile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return domain.Layout{}, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	if wf.Version != "" && wf.Version != SupportedVersion {
		return domain.Layout{}, zerr.With(
			zerr.Wrap(domain.ErrConfigInvalid, "unsupported version"), "version", wf.Version)
	}
	if wf.Fetch.Parallelism < 0 {
		return domain.Layout{}, zerr.With(
			zerr.Wrap(domain.ErrConfigInvalid, "fetch parallelism must not be negative"),
			"parallelism", wf.Fetch.Parallelism)
	}

	layout := domain.DefaultLayout(root)
	layout.PackagesDir = orDefault(wf.Packages, layout.PackagesDir)
	layout.RegistryFile = orDefault(wf.Registry, layout.RegistryFile)
	layout.DependenciesFile = orDefault(wf.Dependencies, layout.DependenciesFile)
	layout.BuildFile = orDefault(wf.BuildFile, layout.BuildFile)
	layout.FetchParallelism = wf.Fetch.Parallelism

	// These two live inside a package directory and must be plain file names.
	for key, name := range map[string]string{
		"dependencies": layout.DependenciesFile,
		"buildFile":    layout.BuildFile,
	} {
		if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return domain.Layout{}, zerr.With(
				zerr.Wrap(domain.ErrConfigInvalid, "must be a plain file name"), key, name)
		}
	}

	return layout, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
