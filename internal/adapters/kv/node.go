package kv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ladder/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/ladder/internal/core/ports"
)

// NodeID is the unique identifier for the BadgerDB graph cache Graft node.
const NodeID graft.ID = "adapter.graph_cache.badger"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
