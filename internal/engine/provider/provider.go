// Package provider produces word-ladder graphs for dictionaries, reusing
// graphs already held in memory or persisted in a graph cache.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/core/ports"
	"go.trai.ch/ladder/internal/engine/builder"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Graph sources reported in Loaded.Source.
const (
	SourceMemory = "memory"
	SourceCache  = "cache"
	SourceBuilt  = "built"
)

// Request describes which dictionary to load and where its graph is cached.
type Request struct {
	DictionaryPath string
	CacheDir       string
	// CacheBackend selects one of the registered caches by name.
	CacheBackend string
	// Rebuild skips every lookup and overwrites the cached entry.
	Rebuild bool
}

// Loaded is a published graph together with its cache key.
type Loaded struct {
	Graph  *domain.Graph
	Key    domain.GraphKey
	Source string
}

// Provider loads dictionaries and publishes their graphs. Concurrent requests
// for the same dictionary content and cache directory share one build.
type Provider struct {
	loader    ports.DictionaryLoader
	caches    map[string]ports.GraphCache
	telemetry ports.Telemetry
	metrics   ports.Metrics
	logger    ports.Logger

	requestGroup singleflight.Group

	mu     sync.RWMutex
	graphs map[string]*domain.Graph
}

// New creates a Provider. caches maps backend names to graph caches.
func New(
	loader ports.DictionaryLoader,
	caches map[string]ports.GraphCache,
	telemetry ports.Telemetry,
	metrics ports.Metrics,
	logger ports.Logger,
) *Provider {
	return &Provider{
		loader:    loader,
		caches:    caches,
		telemetry: telemetry,
		metrics:   metrics,
		logger:    logger,
		graphs:    make(map[string]*domain.Graph),
	}
}

// Graph returns the graph for the dictionary named by req.
func (p *Provider) Graph(ctx context.Context, req Request) (*domain.Graph, error) {
	loaded, err := p.Load(ctx, req)
	if err != nil {
		return nil, err
	}
	return loaded.Graph, nil
}

// Load returns the graph for the dictionary named by req along with its key
// and where it came from.
func (p *Provider) Load(ctx context.Context, req Request) (*Loaded, error) {
	cache, ok := p.caches[req.CacheBackend]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownCacheBackend, "cannot load graph"), "backend", req.CacheBackend)
	}

	words, err := p.loadWords(ctx, req.DictionaryPath)
	if err != nil {
		return nil, err
	}

	_, fpVertex := p.telemetry.Record(ctx, domain.StageFingerprint)
	key := domain.NewGraphKey(words)
	fpVertex.Log(domain.LogLevelDebug, key.String())
	fpVertex.Complete(nil)

	memKey := req.CacheDir + "|" + key.String()
	if !req.Rebuild {
		if g, ok := p.published(memKey); ok {
			p.metrics.CacheLookup(domain.CacheResultMemory)
			return &Loaded{Graph: g, Key: key, Source: SourceMemory}, nil
		}
	}

	flightKey := memKey
	if req.Rebuild {
		flightKey += "|rebuild"
	}

	result, err, _ := p.requestGroup.Do(flightKey, func() (any, error) {
		return p.produce(ctx, cache, req, key, words, memKey)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Loaded), nil
}

// produce runs inside the single flight for memKey.
func (p *Provider) produce(
	ctx context.Context,
	cache ports.GraphCache,
	req Request,
	key domain.GraphKey,
	words []string,
	memKey string,
) (*Loaded, error) {
	if !req.Rebuild {
		// A flight that finished between the caller's check and this one
		// may already have published the graph.
		if g, ok := p.published(memKey); ok {
			p.metrics.CacheLookup(domain.CacheResultMemory)
			return &Loaded{Graph: g, Key: key, Source: SourceMemory}, nil
		}

		if g := p.lookup(ctx, cache, req.CacheDir, key); g != nil {
			p.publish(memKey, g)
			return &Loaded{Graph: g, Key: key, Source: SourceCache}, nil
		}
	}

	g, err := p.build(ctx, words)
	if err != nil {
		return nil, err
	}

	p.store(ctx, cache, req.CacheDir, key, g)
	p.publish(memKey, g)
	return &Loaded{Graph: g, Key: key, Source: SourceBuilt}, nil
}

func (p *Provider) loadWords(ctx context.Context, path string) ([]string, error) {
	_, vertex := p.telemetry.Record(ctx, domain.StageLoadDictionary)
	words, err := p.loader.Load(path)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%d words from %s", len(words), path))
	return words, nil
}

// lookup returns the cached graph for key, or nil when it must be built.
// Corrupt entries are discarded.
func (p *Provider) lookup(ctx context.Context, cache ports.GraphCache, dir string, key domain.GraphKey) *domain.Graph {
	stageCtx, vertex := p.telemetry.Record(ctx, domain.StageCacheLookup)

	entry, err := cache.Lookup(stageCtx, dir, key)
	var g *domain.Graph
	if err == nil && entry != nil {
		g, err = entry.Graph()
		if err != nil {
			err = zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, err.Error()), "key", key.String())
		}
	}

	switch {
	case errors.Is(err, domain.ErrCacheCorrupt):
		p.metrics.CacheLookup(domain.CacheResultCorrupt)
		p.logger.Warn(fmt.Sprintf("discarding corrupt graph cache entry %s: %v", key, err))
		if discardErr := cache.Discard(stageCtx, dir, key); discardErr != nil {
			p.logger.Warn(fmt.Sprintf("failed to discard graph cache entry %s: %v", key, discardErr))
		}
		vertex.Complete(nil)
		return nil
	case err != nil:
		p.metrics.CacheLookup(domain.CacheResultError)
		p.logger.Warn(fmt.Sprintf("graph cache unavailable, rebuilding %s: %v", key, err))
		vertex.Complete(nil)
		return nil
	case entry == nil:
		p.metrics.CacheLookup(domain.CacheResultMiss)
		vertex.Complete(nil)
		return nil
	}

	p.metrics.CacheLookup(domain.CacheResultHit)
	vertex.Cached()
	vertex.Complete(nil)
	return g
}

func (p *Provider) build(ctx context.Context, words []string) (*domain.Graph, error) {
	_, vertex := p.telemetry.Record(ctx, domain.StageBuildGraph)

	start := time.Now()
	g, err := builder.Build(words)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrGraphBuildFailed.Error())
		vertex.Complete(err)
		return nil, err
	}
	elapsed := time.Since(start)

	p.metrics.GraphBuilt(g.NodeCount(), g.EdgeCount(), elapsed)
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d words, %d edges in %s", g.NodeCount(), g.EdgeCount(), elapsed))
	vertex.Complete(nil)
	return g, nil
}

// store persists g. Failures are logged and not returned.
func (p *Provider) store(ctx context.Context, cache ports.GraphCache, dir string, key domain.GraphKey, g *domain.Graph) {
	stageCtx, vertex := p.telemetry.Record(ctx, domain.StageCacheStore)
	err := cache.Store(stageCtx, dir, key, domain.NewCacheEntry(g))
	vertex.Complete(err)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("failed to store graph cache entry %s: %v", key, err))
	}
}

func (p *Provider) published(memKey string) (*domain.Graph, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	g, ok := p.graphs[memKey]
	return g, ok
}

func (p *Provider) publish(memKey string, g *domain.Graph) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.graphs[memKey] = g
}
