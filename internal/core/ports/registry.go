package ports

import "github.com/risteon/ic-workspace/internal/core/domain"

// RegistryLoader defines the interface for reading the package registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type RegistryLoader interface {
	// Load returns the registry of the workspace.
	// It returns an error wrapping domain.ErrRegistryNotFound when the file is absent.
	Load(layout domain.Layout) (domain.Registry, error)
}
