package ports

import "github.com/risteon/ic-workspace/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the workspace configuration below root and returns its layout.
	// A workspace without a config file gets domain.DefaultLayout.
	Load(root string) (domain.Layout, error)
}
