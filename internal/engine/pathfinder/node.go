package pathfinder

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the path finder Graft node.
const NodeID graft.ID = "engine.pathfinder"

func init() {
	graft.Register(graft.Node[*Finder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Finder, error) {
			return New(), nil
		},
	})
}
