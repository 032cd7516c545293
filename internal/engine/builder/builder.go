// Package builder constructs word-ladder graphs from word lists.
package builder

import (
	"slices"

	"go.trai.ch/ladder/internal/core/domain"
)

// Build constructs the graph for words, which must already be de-duplicated.
// Node ids follow the order of words. Adjacency is found through wildcard
// buckets: within a length bucket, words that agree on every position except
// one share the bucket keyed by that position and the remaining runes.
func Build(words []string) (*domain.Graph, error) {
	edges := make([][]int, len(words))

	for _, ids := range bucketByLength(words) {
		connectBucket(words, ids, edges)
	}

	for _, neighbors := range edges {
		slices.Sort(neighbors)
	}

	return domain.NewGraph(words, edges)
}

// bucketByLength groups word ids by rune count.
func bucketByLength(words []string) map[int][]int {
	buckets := make(map[int][]int)
	for id, word := range words {
		n := len([]rune(word))
		buckets[n] = append(buckets[n], id)
	}
	return buckets
}

// connectBucket adds an edge for every pair of words in ids that share a
// wildcard pattern. All words in ids have the same rune length.
func connectBucket(words []string, ids []int, edges [][]int) {
	if len(ids) < 2 {
		return
	}

	runes := make([][]rune, len(ids))
	for i, id := range ids {
		runes[i] = []rune(words[id])
	}
	length := len(runes[0])

	// Keys never cross positions, so one map per position keeps patterns
	// from colliding with literal words.
	patterns := make(map[string][]int, len(ids))
	key := make([]rune, 0, length)

	for pos := range length {
		clear(patterns)
		for i, r := range runes {
			key = append(key[:0], r[:pos]...)
			key = append(key, r[pos+1:]...)
			k := string(key)
			patterns[k] = append(patterns[k], ids[i])
		}

		for _, members := range patterns {
			for a := range members {
				for b := a + 1; b < len(members); b++ {
					u, v := members[a], members[b]
					edges[u] = append(edges[u], v)
					edges[v] = append(edges[v], u)
				}
			}
		}
	}
}
