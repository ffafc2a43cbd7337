package ports

import "github.com/risteon/ic-workspace/internal/core/domain"

// FetchJournal defines the interface for remembering where packages were fetched from.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type FetchJournal interface {
	// Get returns the record for a package, or nil, nil if there is none.
	Get(name string) (*domain.FetchRecord, error)

	// Put stores a record, replacing any previous record of the same package.
	Put(record domain.FetchRecord) error
}

// JournalOpener opens the fetch journal of a workspace.
type JournalOpener interface {
	Open(layout domain.Layout) (FetchJournal, error)
}
