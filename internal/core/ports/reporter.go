package ports

import "github.com/risteon/ic-workspace/internal/core/domain"

// Reporter presents the result of a resolution run to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Summary prints a short account of what a fetch run did.
	Summary(res *domain.Resolution) error
	// Status prints the full workspace status.
	Status(res *domain.Resolution) error
}
