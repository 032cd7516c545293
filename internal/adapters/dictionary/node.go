package dictionary

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ladder/internal/core/ports"
)

// NodeID is the unique identifier for the dictionary loader Graft node.
const NodeID graft.ID = "adapter.dictionary_loader"

func init() {
	graft.Register(graft.Node[ports.DictionaryLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DictionaryLoader, error) {
			return NewLoader(), nil
		},
	})
}
