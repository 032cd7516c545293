// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ladder/internal/adapters/cas"
	_ "go.trai.ch/ladder/internal/adapters/config"
	_ "go.trai.ch/ladder/internal/adapters/dictionary"
	_ "go.trai.ch/ladder/internal/adapters/kv"
	_ "go.trai.ch/ladder/internal/adapters/logger"
	_ "go.trai.ch/ladder/internal/adapters/metrics"
	_ "go.trai.ch/ladder/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/ladder/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/ladder/internal/app"
	_ "go.trai.ch/ladder/internal/engine/pathfinder"
	_ "go.trai.ch/ladder/internal/engine/provider"
)
