package ports

import "github.com/risteon/ic-workspace/internal/core/domain"

// PackageScanner defines the interface for discovering packages on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type PackageScanner interface {
	// Scan returns the names of all package directories, creating the packages
	// directory when it does not exist yet.
	Scan(layout domain.Layout) ([]domain.InternedString, error)

	// ReadDependencies returns the declared dependencies of a package.
	// It returns an error wrapping domain.ErrDeclarationNotFound when the package has
	// no declaration file.
	ReadDependencies(layout domain.Layout, name domain.InternedString) ([]domain.InternedString, error)

	// Exists reports whether the package directory is present.
	Exists(layout domain.Layout, name domain.InternedString) bool
}
