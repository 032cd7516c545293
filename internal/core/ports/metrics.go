package ports

import "time"

// Metrics records counters and timings of graph production and path queries.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheLookup counts a graph lookup by its result, one of the domain.CacheResult values.
	CacheLookup(result string)
	// GraphBuilt records a graph construction.
	GraphBuilt(nodes, edges int, elapsed time.Duration)
	// Query records a path query by kind and outcome.
	Query(kind, outcome string, elapsed time.Duration)
}
