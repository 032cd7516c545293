package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Stage names recorded while producing a graph.
const (
	StageLoadDictionary = "load dictionary"
	StageFingerprint    = "fingerprint dictionary"
	StageCacheLookup    = "lookup graph cache"
	StageBuildGraph     = "build graph"
	StageCacheStore     = "store graph cache"
)

// Cache lookup results reported to metrics.
const (
	CacheResultMemory  = "memory"
	CacheResultHit     = "hit"
	CacheResultMiss    = "miss"
	CacheResultCorrupt = "corrupt"
	CacheResultError   = "error"
)

// Query kinds and outcomes reported to metrics.
const (
	QueryShortest    = "shortest"
	QueryAllShortest = "all_shortest"
	QueryAll         = "all"

	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)
