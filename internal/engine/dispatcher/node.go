package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mkdo/internal/adapters/shell" //nolint:depguard // Wired in engine wiring
)

// RegistryNodeID is the unique identifier for the executor registry Graft node.
const RegistryNodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			builtins, err := graft.Dep[shell.Executors](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(builtins), nil
		},
	})
}
