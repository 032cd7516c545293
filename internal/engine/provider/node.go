package provider

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ladder/internal/adapters/cas"                //nolint:depguard // Wired in node
	"go.trai.ch/ladder/internal/adapters/dictionary"         //nolint:depguard // Wired in node
	"go.trai.ch/ladder/internal/adapters/kv"                 //nolint:depguard // Wired in node
	"go.trai.ch/ladder/internal/adapters/logger"             //nolint:depguard // Wired in node
	"go.trai.ch/ladder/internal/adapters/metrics"            //nolint:depguard // Wired in node
	"go.trai.ch/ladder/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in node
	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/core/ports"
)

// NodeID is the unique identifier for the graph provider Graft node.
const NodeID graft.ID = "engine.provider"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			dictionary.NodeID,
			cas.NodeID,
			kv.NodeID,
			progrock.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runProviderNode,
	})
}

func runProviderNode(ctx context.Context) (*Provider, error) {
	loader, err := graft.Dep[ports.DictionaryLoader](ctx)
	if err != nil {
		return nil, err
	}

	fileCache, err := graft.Dep[ports.GraphCache](ctx)
	if err != nil {
		return nil, err
	}

	kvCache, err := graft.Dep[*kv.Store](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	caches := map[string]ports.GraphCache{
		domain.CacheBackendFile:   fileCache,
		domain.CacheBackendBadger: kvCache,
	}
	return New(loader, caches, telemetry, recorder, log), nil
}
