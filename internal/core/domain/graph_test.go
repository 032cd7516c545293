package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestNewGraph_Valid(t *testing.T) {
	nodes := []string{"hot", "dot", "dog"}
	edges := [][]int{{1}, {2, 0}, {1}}

	g, err := domain.NewGraph(nodes, edges)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{0, 2}, g.Neighbors(1), "neighbors are sorted by id")

	id, ok := g.Index("dog")
	assert.True(t, ok)
	assert.Equal(t, 2, id)
	assert.Equal(t, "dog", g.Word(id))

	_, ok = g.Index("cat")
	assert.False(t, ok)
}

func TestNewGraph_CopiesInput(t *testing.T) {
	nodes := []string{"ab", "ac"}
	edges := [][]int{{1}, {0}}

	g, err := domain.NewGraph(nodes, edges)
	require.NoError(t, err)

	nodes[0] = "zz"
	edges[0][0] = 7

	assert.Equal(t, "ab", g.Word(0))
	assert.Equal(t, []int{1}, g.Neighbors(0))
}

func TestNewGraph_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][]int
		key   string
	}{
		{
			name:  "edge list count mismatch",
			nodes: []string{"a", "b"},
			edges: [][]int{{1}},
			key:   "edge_list_count",
		},
		{
			name:  "empty word",
			nodes: []string{"a", ""},
			edges: [][]int{nil, nil},
			key:   "empty_word_at",
		},
		{
			name:  "duplicate word",
			nodes: []string{"a", "a"},
			edges: [][]int{nil, nil},
			key:   "duplicate_word",
		},
		{
			name:  "out of range neighbor",
			nodes: []string{"a", "b"},
			edges: [][]int{{2}, nil},
			key:   "neighbor_out_of_range",
		},
		{
			name:  "self loop",
			nodes: []string{"a", "b"},
			edges: [][]int{{0}, nil},
			key:   "self_loop",
		},
		{
			name:  "duplicate neighbor",
			nodes: []string{"a", "b"},
			edges: [][]int{{1, 1}, {0}},
			key:   "duplicate_neighbor",
		},
		{
			name:  "asymmetric edge",
			nodes: []string{"a", "b"},
			edges: [][]int{{1}, nil},
			key:   "asymmetric_edge_from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewGraph(tt.nodes, tt.edges)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidGraph))

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Contains(t, zErr.Metadata(), tt.key)
		})
	}
}

func TestGraph_Resolve(t *testing.T) {
	g, err := domain.NewGraph([]string{"hit"}, [][]int{nil})
	require.NoError(t, err)

	id, err := g.Resolve("hit")
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	_, err = g.Resolve("cog")
	require.ErrorIs(t, err, domain.ErrWordNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "cog", zErr.Metadata()["word"])
}

func TestGraph_NodesIterator(t *testing.T) {
	g, err := domain.NewGraph([]string{"a", "b", "c"}, [][]int{nil, nil, nil})
	require.NoError(t, err)

	var got []string
	for id, word := range g.Nodes() {
		assert.Equal(t, word, g.Word(id))
		got = append(got, word)
		if id == 1 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
