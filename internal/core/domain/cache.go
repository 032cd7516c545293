package domain

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// CacheEntry is the persisted form of a built graph.
type CacheEntry struct {
	NodeCount int      `json:"node_count"`
	Nodes     []string `json:"nodes"`
	Edges     [][]int  `json:"edges"`
	Checksum  string   `json:"checksum"`
}

// NewCacheEntry captures a graph's node and edge lists and seals them with a checksum.
func NewCacheEntry(g *Graph) *CacheEntry {
	entry := &CacheEntry{
		NodeCount: g.NodeCount(),
		Nodes:     g.Words(),
		Edges:     g.Edges(),
	}
	entry.Checksum = entry.ComputeChecksum()
	return entry
}

// ComputeChecksum hashes the node count, node list and edge lists.
func (e *CacheEntry) ComputeChecksum() string {
	hasher := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(e.NodeCount)) //nolint:gosec // Count is non-negative
	_, _ = hasher.Write(buf[:])

	for _, word := range e.Nodes {
		_, _ = hasher.WriteString(word)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, neighbors := range e.Edges {
		for _, n := range neighbors {
			binary.LittleEndian.PutUint64(buf[:], uint64(n)) //nolint:gosec // Ids are validated by NewGraph
			_, _ = hasher.Write(buf[:])
		}
		_, _ = hasher.Write([]byte{0xff})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// Verify checks the entry against the key it was stored under.
// It returns a non-empty reason when the entry must not be trusted.
func (e *CacheEntry) Verify(key GraphKey) string {
	switch {
	case e.NodeCount != key.NodeCount:
		return "node count mismatch"
	case len(e.Nodes) != e.NodeCount:
		return "node list length mismatch"
	case len(e.Edges) != e.NodeCount:
		return "edge list length mismatch"
	case e.Checksum != e.ComputeChecksum():
		return "checksum mismatch"
	case ComputeFingerprint(e.Nodes) != key.Fingerprint:
		return "fingerprint mismatch"
	}
	return ""
}

// Graph rebuilds the immutable graph from the entry.
func (e *CacheEntry) Graph() (*Graph, error) {
	return NewGraph(e.Nodes, e.Edges)
}
