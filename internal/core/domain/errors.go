package domain

import "go.trai.ch/zerr"

var (
	// ErrDictionaryRead is returned when the dictionary source cannot be opened or read.
	ErrDictionaryRead = zerr.New("failed to read dictionary")

	// ErrWordNotFound is returned when a start or end word is absent from the graph.
	ErrWordNotFound = zerr.New("word not found in dictionary")

	// ErrNoWordsSpecified is returned when a query is missing its start or end word.
	ErrNoWordsSpecified = zerr.New("start and end words are required")

	// ErrInvalidGraph is returned when an adjacency structure violates the graph invariants.
	ErrInvalidGraph = zerr.New("invalid graph")

	// ErrInvalidPathLimits is returned when all-paths enumeration is requested without a usable bound.
	ErrInvalidPathLimits = zerr.New("invalid path limits, max paths must be positive and max depth non-negative")

	// ErrCacheCorrupt is returned when a stored graph entry disagrees with its key or checksum.
	// The provider recovers from it by discarding the entry and rebuilding.
	ErrCacheCorrupt = zerr.New("graph cache entry is corrupt")

	// ErrCacheReadFailed is returned when a graph cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read graph cache entry")

	// ErrCacheWriteFailed is returned when a graph cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write graph cache entry")

	// ErrCacheCreateFailed is returned when the graph cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create graph cache directory")

	// ErrCacheMarshalFailed is returned when a graph cache entry cannot be marshaled.
	ErrCacheMarshalFailed = zerr.New("failed to marshal graph cache entry")

	// ErrCacheOpenFailed is returned when the key-value cache database cannot be opened.
	ErrCacheOpenFailed = zerr.New("failed to open graph cache database")

	// ErrUnknownCacheBackend is returned when the configured cache backend is not supported.
	ErrUnknownCacheBackend = zerr.New("unknown cache backend, expected 'file' or 'badger'")

	// ErrUnknownLogFormat is returned when the configured log format is not supported.
	ErrUnknownLogFormat = zerr.New("unknown log format, expected 'pretty' or 'json'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrGraphBuildFailed is returned when the graph for a dictionary cannot be produced.
	ErrGraphBuildFailed = zerr.New("failed to build word graph")
)
