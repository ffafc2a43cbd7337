package ports

import "github.com/risteon/ic-workspace/internal/core/domain"

// BuildFileWriter defines the interface for emitting the ordered build file.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_file.go -destination=mocks/mock_build_file.go -package=mocks
type BuildFileWriter interface {
	// Write emits one entry per package, in the given order.
	Write(layout domain.Layout, order []domain.InternedString) error
}
