package git

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/risteon/ic-workspace/internal/core/ports"
)

// NodeID is the unique identifier for the git fetcher Graft node.
const NodeID graft.ID = "adapter.git.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fetcher, error) {
			return NewFetcher(), nil
		},
	})
}
