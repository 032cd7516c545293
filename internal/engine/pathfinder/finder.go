// Package pathfinder answers path queries over a built word-ladder graph.
//
// Every query owns its traversal state, so one Finder may serve any number of
// concurrent queries against the same immutable graph. Neighbors are always
// expanded in ascending node id order, which makes every result reproducible
// for a given graph.
package pathfinder

import (
	"context"
	"errors"

	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/zerr"
)

// cancelCheckInterval is the number of depth-first expansions between
// context checks.
const cancelCheckInterval = 1024

// errLimitReached stops an enumeration once a path beyond MaxPaths was found.
var errLimitReached = errors.New("path limit reached")

// Finder runs breadth-first and depth-first searches over a domain.Graph.
type Finder struct{}

// New creates a new Finder.
func New() *Finder {
	return &Finder{}
}

// ShortestPath returns one shortest path from start to end. The boolean is
// false when end is unreachable from start. Among equally short paths the one
// whose nodes were discovered first wins.
func (f *Finder) ShortestPath(ctx context.Context, g *domain.Graph, start, end string) (domain.Path, bool, error) {
	s, t, err := resolvePair(g, start, end)
	if err != nil {
		return nil, false, err
	}
	if s == t {
		return domain.Path{g.Word(s)}, true, nil
	}

	pred := map[int]int{s: s}
	frontier := []int{s}
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, cancelled(err, start, end)
		}

		var next []int
		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				if _, seen := pred[v]; seen {
					continue
				}
				pred[v] = u
				if v == t {
					return walkBack(g, pred, s, t), true, nil
				}
				next = append(next, v)
			}
		}
		frontier = next
	}

	return nil, false, nil
}

// AllShortestPaths returns every path of minimal length from start to end.
// The result is empty when end is unreachable.
func (f *Finder) AllShortestPaths(ctx context.Context, g *domain.Graph, start, end string) ([]domain.Path, error) {
	s, t, err := resolvePair(g, start, end)
	if err != nil {
		return nil, err
	}
	if s == t {
		return []domain.Path{{g.Word(s)}}, nil
	}

	dist := map[int]int{s: 0}
	preds := make(map[int][]int)
	frontier := []int{s}
	for level := 0; len(frontier) > 0; level++ {
		if _, found := dist[t]; found {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, cancelled(err, start, end)
		}

		var next []int
		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				d, seen := dist[v]
				switch {
				case !seen:
					dist[v] = level + 1
					preds[v] = append(preds[v], u)
					next = append(next, v)
				case d == level+1:
					preds[v] = append(preds[v], u)
				}
			}
		}
		frontier = next
	}

	length, found := dist[t]
	if !found {
		return []domain.Path{}, nil
	}

	var (
		paths []domain.Path
		steps int
	)
	chain := make([]int, length+1)

	// chain[i] holds the node at distance i from start.
	var walk func(v, pos int) error
	walk = func(v, pos int) error {
		chain[pos] = v
		if pos == 0 {
			paths = append(paths, toPath(g, chain))
			return nil
		}
		steps++
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return cancelled(err, start, end)
			}
		}
		for _, u := range preds[v] {
			if err := walk(u, pos-1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(t, length); err != nil {
		return nil, err
	}
	return paths, nil
}

// AllPaths enumerates simple paths from start to end in depth-first order,
// bounded by limits. Branches that cannot reach end within the remaining depth
// are pruned. PathSet.Truncated is set when more paths than MaxPaths exist.
func (f *Finder) AllPaths(
	ctx context.Context,
	g *domain.Graph,
	start, end string,
	limits domain.PathLimits,
) (domain.PathSet, error) {
	if !limits.Valid() {
		return domain.PathSet{}, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInvalidPathLimits, "cannot enumerate paths"), "max_paths", limits.MaxPaths),
			"max_depth", limits.MaxDepth,
		)
	}

	s, t, err := resolvePair(g, start, end)
	if err != nil {
		return domain.PathSet{}, err
	}
	if s == t {
		return domain.PathSet{Paths: []domain.Path{{g.Word(s)}}}, nil
	}

	toEnd, err := distancesFrom(ctx, g, t)
	if err != nil {
		return domain.PathSet{}, cancelled(err, start, end)
	}
	if _, reachable := toEnd[s]; !reachable {
		return domain.PathSet{Paths: []domain.Path{}}, nil
	}

	maxDepth := limits.MaxDepth
	if maxDepth == 0 {
		maxDepth = g.NodeCount() - 1
	}

	var (
		set   = domain.PathSet{Paths: []domain.Path{}}
		steps int
	)
	onPath := map[int]bool{s: true}
	chain := []int{s}

	var walk func(u int) error
	walk = func(u int) error {
		steps++
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return cancelled(err, start, end)
			}
		}

		depth := len(chain) - 1
		for _, v := range g.Neighbors(u) {
			if onPath[v] {
				continue
			}
			if remaining, ok := toEnd[v]; !ok || depth+1+remaining > maxDepth {
				continue
			}

			chain = append(chain, v)
			if v == t {
				if len(set.Paths) == limits.MaxPaths {
					set.Truncated = true
					return errLimitReached
				}
				set.Paths = append(set.Paths, toPath(g, chain))
				chain = chain[:len(chain)-1]
				continue
			}

			onPath[v] = true
			err := walk(v)
			onPath[v] = false
			chain = chain[:len(chain)-1]
			if err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(s); err != nil && !errors.Is(err, errLimitReached) {
		return domain.PathSet{}, err
	}
	return set, nil
}

// distancesFrom returns the BFS distance of every node reachable from src.
func distancesFrom(ctx context.Context, g *domain.Graph, src int) (map[int]int, error) {
	dist := map[int]int{src: 0}
	frontier := []int{src}
	for level := 0; len(frontier) > 0; level++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var next []int
		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				if _, seen := dist[v]; seen {
					continue
				}
				dist[v] = level + 1
				next = append(next, v)
			}
		}
		frontier = next
	}
	return dist, nil
}

// resolvePair maps both query words to node ids before any traversal starts.
func resolvePair(g *domain.Graph, start, end string) (int, int, error) {
	if start == "" || end == "" {
		return 0, 0, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrNoWordsSpecified, "cannot search"), "start", start),
			"end", end,
		)
	}
	s, err := g.Resolve(start)
	if err != nil {
		return 0, 0, err
	}
	t, err := g.Resolve(end)
	if err != nil {
		return 0, 0, err
	}
	return s, t, nil
}

// walkBack follows predecessor links from t to s and returns the path in
// start-to-end order.
func walkBack(g *domain.Graph, pred map[int]int, s, t int) domain.Path {
	var ids []int
	for v := t; v != s; v = pred[v] {
		ids = append(ids, v)
	}
	ids = append(ids, s)

	path := make(domain.Path, len(ids))
	for i, id := range ids {
		path[len(ids)-1-i] = g.Word(id)
	}
	return path
}

func toPath(g *domain.Graph, ids []int) domain.Path {
	path := make(domain.Path, len(ids))
	for i, id := range ids {
		path[i] = g.Word(id)
	}
	return path
}

func cancelled(err error, start, end string) error {
	return zerr.With(zerr.With(zerr.Wrap(err, "path search cancelled"), "start", start), "end", end)
}
