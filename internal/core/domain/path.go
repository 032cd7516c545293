package domain

import "strings"

// PathSeparator is placed between words when a Path is rendered.
const PathSeparator = " -> "

// Path is an ordered sequence of words from a start word to an end word, inclusive.
type Path []string

// Len returns the number of edges in the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// String renders the path as "a -> b -> c".
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// PathSet is the result of a bounded path enumeration.
type PathSet struct {
	Paths []Path
	// Truncated reports that enumeration stopped at the configured limit
	// while more paths were still available.
	Truncated bool
}

// Default bounds for all-paths enumeration.
const (
	DefaultMaxPaths = 100
	DefaultMaxDepth = 0
)

// PathLimits bounds all-paths enumeration.
type PathLimits struct {
	// MaxPaths is the maximum number of paths returned. It must be positive.
	MaxPaths int
	// MaxDepth is the maximum number of edges in a returned path. Zero means
	// the only bound is the size of the graph.
	MaxDepth int
}

// DefaultPathLimits returns the default enumeration bounds.
func DefaultPathLimits() PathLimits {
	return PathLimits{
		MaxPaths: DefaultMaxPaths,
		MaxDepth: DefaultMaxDepth,
	}
}

// Valid reports whether the limits can bound an enumeration.
func (l PathLimits) Valid() bool {
	return l.MaxPaths > 0 && l.MaxDepth >= 0
}
