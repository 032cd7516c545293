package ports

import (
	"context"

	"go.trai.ch/ladder/internal/core/domain"
)

// GraphCache defines the interface for persisting built graphs between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph_cache.go -destination=mocks/mock_graph_cache.go -package=mocks
type GraphCache interface {
	// Lookup retrieves the entry stored under key in dir.
	// Returns nil, nil on a cache miss and domain.ErrCacheCorrupt if the entry
	// exists but cannot be trusted.
	Lookup(ctx context.Context, dir string, key domain.GraphKey) (*domain.CacheEntry, error)

	// Store persists entry under key in dir, replacing any existing entry.
	Store(ctx context.Context, dir string, key domain.GraphKey, entry *domain.CacheEntry) error

	// Discard removes the entry stored under key in dir. Removing a missing entry is not an error.
	Discard(ctx context.Context, dir string, key domain.GraphKey) error
}
