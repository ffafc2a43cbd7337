// Package fs reads the package directories of a workspace.
package fs

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"slices"
	"strings"

	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
	"github.com/tidwall/jsonc"
	"go.trai.ch/zerr"
)

var _ ports.PackageScanner = (*Scanner)(nil)

// Scanner implements ports.PackageScanner on the local filesystem.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan lists the package directories, creating the packages directory if needed.
// Hidden entries and plain files are skipped.
func (s *Scanner) Scan(layout domain.Layout) ([]domain.InternedString, error) {
	dir := layout.PackagesPath()

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkspaceUnreadable, err.Error()), "path", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkspaceUnreadable, err.Error()), "path", dir)
	}

	names := make([]domain.InternedString, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, domain.NewInternedString(entry.Name()))
	}

	slices.SortFunc(names, domain.InternedString.Compare)
	return names, nil
}

// ReadDependencies reads the declaration file of a package.
func (s *Scanner) ReadDependencies(layout domain.Layout, name domain.InternedString) ([]domain.InternedString, error) {
	path := layout.DeclarationPath(name)

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the workspace layout
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrDeclarationNotFound, "cannot read dependencies"), "package", name.String())
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDeclarationReadFailed, err.Error()), "path", path)
	}

	deps, err := ParseDeclaration(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return deps, nil
}

// ParseDeclaration decodes a JSON array of package names.
func ParseDeclaration(data []byte) ([]domain.InternedString, error) {
	var names []string
	if err := json.Unmarshal(jsonc.ToJSON(data), &names); err != nil {
		return nil, zerr.Wrap(domain.ErrDeclarationParseFailed, err.Error())
	}
	return domain.CanonicalizeIDs(domain.NewInternedStrings(names)), nil
}

// Exists reports whether the package directory is present.
func (s *Scanner) Exists(layout domain.Layout, name domain.InternedString) bool {
	info, err := os.Stat(layout.PackagePath(name))
	return err == nil && info.IsDir()
}
