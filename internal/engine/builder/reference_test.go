package builder

import "go.trai.ch/ladder/internal/core/domain"

// buildReference is the naive pairwise construction. It is quadratic in the
// number of words and only used to cross-check Build on small inputs.
func buildReference(words []string) (*domain.Graph, error) {
	runes := make([][]rune, len(words))
	for i, w := range words {
		runes[i] = []rune(w)
	}

	edges := make([][]int, len(words))
	for i := range runes {
		for j := i + 1; j < len(runes); j++ {
			if hamming(runes[i], runes[j]) == 1 {
				edges[i] = append(edges[i], j)
				edges[j] = append(edges[j], i)
			}
		}
	}
	return domain.NewGraph(words, edges)
}

// hamming returns the number of differing positions, or -1 when lengths differ.
func hamming(a, b []rune) int {
	if len(a) != len(b) {
		return -1
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}
