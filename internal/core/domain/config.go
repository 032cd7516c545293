package domain

// Config holds the resolved ladder settings.
type Config struct {
	// DictionaryPath is the word list the graph is built from.
	DictionaryPath string
	// CacheDir is the directory that holds cached graphs.
	CacheDir string
	// CacheBackend selects the cache implementation, "file" or "badger".
	CacheBackend string
	// Limits bounds all-paths enumeration.
	Limits PathLimits
	// LogFormat selects "pretty" or "json" log output.
	LogFormat string
}

// Log formats.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		DictionaryPath: DefaultDictionaryPath,
		CacheDir:       DefaultCachePath(),
		CacheBackend:   CacheBackendFile,
		Limits:         DefaultPathLimits(),
		LogFormat:      LogFormatPretty,
	}
}
