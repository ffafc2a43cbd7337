package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/risteon/ic-workspace/internal/core/ports"
)

// NodeID is the unique identifier for the build file writer Graft node.
const NodeID graft.ID = "adapter.cmake.writer"

func init() {
	graft.Register(graft.Node[ports.BuildFileWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildFileWriter, error) {
			return NewWriter(), nil
		},
	})
}
