package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/risteon/ic-workspace/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"github.com/risteon/ic-workspace/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"github.com/risteon/ic-workspace/internal/adapters/git"                //nolint:depguard // Wired in engine wiring
	"github.com/risteon/ic-workspace/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/risteon/ic-workspace/internal/adapters/registry"           //nolint:depguard // Wired in engine wiring
	"github.com/risteon/ic-workspace/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/risteon/ic-workspace/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			fs.ScannerNodeID,
			git.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			registryLoader, err := graft.Dep[ports.RegistryLoader](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.PackageScanner](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			journals, err := graft.Dep[ports.JournalOpener](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(
				registryLoader,
				scanner,
				fetcher,
				hasher,
				journals,
				telemetry,
				log,
			), nil
		},
	})
}
