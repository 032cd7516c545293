// Package domain contains the core domain models for the word-ladder graph.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Graph is an immutable word-ladder graph. A node's identifier is its position
// in the node sequence; edges connect equal-length words that differ in
// exactly one position.
type Graph struct {
	nodes []string
	index map[string]int
	edges [][]int
}

// NewGraph creates a Graph from a node list and per-node neighbor lists.
// It validates the graph invariants and returns ErrInvalidGraph on violation.
// Neighbor lists are copied and sorted so iteration follows index order.
func NewGraph(nodes []string, edges [][]int) (*Graph, error) {
	if len(edges) != len(nodes) {
		return nil, zerr.With(
			invalidGraph("edge lists do not match nodes", "node_count", len(nodes)),
			"edge_list_count", len(edges),
		)
	}

	g := &Graph{
		nodes: slices.Clone(nodes),
		index: make(map[string]int, len(nodes)),
		edges: make([][]int, len(nodes)),
	}

	for i, word := range g.nodes {
		if word == "" {
			return nil, invalidGraph("empty word", "empty_word_at", i)
		}
		if _, exists := g.index[word]; exists {
			return nil, invalidGraph("duplicate word", "duplicate_word", word)
		}
		g.index[word] = i
	}

	for i, neighbors := range edges {
		sorted := slices.Clone(neighbors)
		slices.Sort(sorted)
		for k, j := range sorted {
			if j < 0 || j >= len(nodes) {
				return nil, zerr.With(invalidGraph("neighbor out of range", "node", i), "neighbor_out_of_range", j)
			}
			if j == i {
				return nil, invalidGraph("self loop", "self_loop", i)
			}
			if k > 0 && sorted[k-1] == j {
				return nil, zerr.With(invalidGraph("duplicate neighbor", "node", i), "duplicate_neighbor", j)
			}
		}
		g.edges[i] = sorted
	}

	for i, neighbors := range g.edges {
		for _, j := range neighbors {
			if _, ok := slices.BinarySearch(g.edges[j], i); !ok {
				return nil, zerr.With(invalidGraph("asymmetric edge", "asymmetric_edge_from", i), "to", j)
			}
		}
	}

	return g, nil
}

// invalidGraph wraps ErrInvalidGraph with a reason and one metadata pair.
func invalidGraph(reason, key string, value any) error {
	return zerr.With(zerr.Wrap(ErrInvalidGraph, reason), key, value)
}

// NodeCount returns the number of words in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges in the graph.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, neighbors := range g.edges {
		total += len(neighbors)
	}
	return total / 2
}

// Word returns the word stored at node id.
func (g *Graph) Word(id int) string {
	return g.nodes[id]
}

// Index returns the node id of word and whether it is present.
func (g *Graph) Index(word string) (int, bool) {
	id, ok := g.index[word]
	return id, ok
}

// Neighbors returns the neighbor ids of node id in ascending order.
// The returned slice must not be modified.
func (g *Graph) Neighbors(id int) []int {
	return g.edges[id]
}

// Nodes returns an iterator over the words in node id order.
func (g *Graph) Nodes() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, word := range g.nodes {
			if !yield(i, word) {
				return
			}
		}
	}
}

// Words returns a copy of the node list.
func (g *Graph) Words() []string {
	return slices.Clone(g.nodes)
}

// Edges returns a deep copy of the adjacency lists, indexed by node id.
func (g *Graph) Edges() [][]int {
	out := make([][]int, len(g.edges))
	for i, neighbors := range g.edges {
		out[i] = slices.Clone(neighbors)
	}
	return out
}

// Resolve maps a word to its node id, returning ErrWordNotFound if it is absent.
func (g *Graph) Resolve(word string) (int, error) {
	id, ok := g.index[word]
	if !ok {
		return 0, zerr.With(zerr.Wrap(ErrWordNotFound, "cannot resolve query word"), "word", word)
	}
	return id, nil
}
