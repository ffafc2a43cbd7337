package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/risteon/ic-workspace/internal/core/ports"
)

// NodeID is the unique identifier for the fetch journal Graft node.
const NodeID graft.ID = "adapter.fetch_journal"

func init() {
	graft.Register(graft.Node[ports.JournalOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.JournalOpener, error) {
			return NewOpener(), nil
		},
	})
}
