// Package registry reads the workspace registry that maps package names to fetch locators.
package registry

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
	"github.com/tidwall/jsonc"
	"go.trai.ch/zerr"
)

var _ ports.RegistryLoader = (*Loader)(nil)

// Loader implements ports.RegistryLoader for a JSON object file.
// Comments and trailing commas are accepted.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a registry Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the registry file of the layout.
func (l *Loader) Load(layout domain.Layout) (domain.Registry, error) {
	path := layout.RegistryPath()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the workspace layout
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrRegistryNotFound, "cannot load registry"), "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRegistryReadFailed, err.Error()), "path", path)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	valid := make(map[string]string, len(entries))
	for name, locator := range entries {
		if err := domain.ValidatePackageName(name); err != nil {
			l.logger.Warn("ignoring registry entry " + `"` + name + `": not a valid package name`)
			continue
		}
		if strings.TrimSpace(locator) == "" {
			l.logger.Warn("ignoring registry entry " + `"` + name + `": empty locator`)
			continue
		}
		valid[name] = locator
	}

	return domain.NewRegistry(valid), nil
}

// Parse decodes a registry document.
func Parse(data []byte) (map[string]string, error) {
	var entries map[string]string
	if err := json.Unmarshal(jsonc.ToJSON(data), &entries); err != nil {
		return nil, zerr.Wrap(domain.ErrRegistryParseFailed, err.Error())
	}
	if entries == nil {
		// A literal null is not a registry.
		return nil, zerr.Wrap(domain.ErrRegistryParseFailed, "expected a JSON object")
	}
	return entries, nil
}
