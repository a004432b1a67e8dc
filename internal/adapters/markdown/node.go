package markdown

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mkdo/internal/core/ports"
)

// NodeID is the unique identifier for the markdown parser Graft node.
const NodeID graft.ID = "adapter.markdown"

func init() {
	graft.Register(graft.Node[ports.DocumentParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.DocumentParser, error) {
			return NewParser(), nil
		},
	})
}
