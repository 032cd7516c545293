package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ladder/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/ladder/internal/adapters/kv"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/ladder/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/ladder/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/ladder/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/ladder/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/ladder/internal/core/ports"
	"go.trai.ch/ladder/internal/engine/pathfinder"
	"go.trai.ch/ladder/internal/engine/provider"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			provider.NodeID,
			pathfinder.NodeID,
			watcher.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			metrics.NodeID,
			progrock.NodeID,
			kv.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	prov, err := graft.Dep[*provider.Provider](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[*pathfinder.Finder](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
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

	return New(loader, prov, finder, w, recorder, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[*kv.Store](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, recorder, telemetry, store), nil
}
