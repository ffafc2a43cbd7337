package ports

import (
	"context"
	"io"
)

// Fetcher defines the interface for materializing a package from its locator.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch places the files found at locator into dest. Progress output is written
	// to out. dest must not exist when Fetch is called; on failure nothing is left
	// behind at dest.
	Fetch(ctx context.Context, locator, dest string, out io.Writer) error
}
