package domain

import "path/filepath"

const (
	// LadderDirName is the name of the internal workspace directory.
	LadderDirName = ".ladder"

	// GraphsDirName is the name of the graph cache directory.
	GraphsDirName = "graphs"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "ladder.yaml"

	// DefaultDictionaryPath is the word list used when none is configured.
	DefaultDictionaryPath = "/usr/share/dict/words"

	// CacheEntryExt is the file extension of file-backed cache entries.
	CacheEntryExt = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Cache backends.
const (
	CacheBackendFile   = "file"
	CacheBackendBadger = "badger"
)

// DefaultCachePath returns the default directory for cached graphs.
// It joins .ladder and graphs.
func DefaultCachePath() string {
	return filepath.Join(LadderDirName, GraphsDirName)
}
