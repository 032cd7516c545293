package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ladder/internal/core/ports"
)

// NodeID is the unique identifier for the file graph cache Graft node.
const NodeID graft.ID = "adapter.graph_cache.file"

func init() {
	graft.Register(graft.Node[ports.GraphCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphCache, error) {
			store, err := NewStore()
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
