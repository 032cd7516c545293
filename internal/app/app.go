// Package app implements the application layer for ladder.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/core/ports"
	"go.trai.ch/ladder/internal/engine/pathfinder"
	"go.trai.ch/ladder/internal/engine/provider"
	"go.trai.ch/zerr"
)

// SearchMode selects which path query Search runs.
type SearchMode int

const (
	// ModeShortest returns one shortest path.
	ModeShortest SearchMode = iota
	// ModeAllShortest returns every shortest path.
	ModeAllShortest
	// ModeAll enumerates simple paths within the configured limits.
	ModeAll
)

// Options carries per-invocation overrides. Empty fields fall back to the
// configuration file.
type Options struct {
	ConfigPath     string
	DictionaryPath string
	CacheDir       string
	CacheBackend   string
	Rebuild        bool
}

// SearchOptions configures a single search.
type SearchOptions struct {
	Mode     SearchMode
	MaxPaths *int
	MaxDepth *int
}

// App wires the graph provider and path finder to the command surface.
type App struct {
	configLoader ports.ConfigLoader
	provider     *provider.Provider
	finder       *pathfinder.Finder
	watcher      ports.Watcher
	metrics      ports.Metrics
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	prov *provider.Provider,
	finder *pathfinder.Finder,
	watcher ports.Watcher,
	metrics ports.Metrics,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		provider:     prov,
		finder:       finder,
		watcher:      watcher,
		metrics:      metrics,
		logger:       log,
	}
}

// Search loads the dictionary graph and writes the paths from start to end
// to out, one per line, or a not-found line.
func (a *App) Search(ctx context.Context, opts Options, start, end string, search SearchOptions, out io.Writer) error {
	cfg, err := a.configure(opts)
	if err != nil {
		return err
	}

	limits := cfg.Limits
	if search.MaxPaths != nil {
		limits.MaxPaths = *search.MaxPaths
	}
	if search.MaxDepth != nil {
		limits.MaxDepth = *search.MaxDepth
	}
	if search.Mode == ModeAll && !limits.Valid() {
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInvalidPathLimits, "cannot search"), "max_paths", limits.MaxPaths),
			"max_depth", limits.MaxDepth,
		)
	}

	g, err := a.provider.Graph(ctx, request(cfg, opts.Rebuild))
	if err != nil {
		return zerr.Wrap(err, "failed to load graph")
	}

	paths, truncated, err := a.query(ctx, g, start, end, search.Mode, limits)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		_, err = fmt.Fprintf(out, "no path from %s to %s\n", start, end)
		return err
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(out, p.String()); err != nil {
			return err
		}
	}
	if truncated {
		a.logger.Warn(fmt.Sprintf("stopped after %d paths, more paths exist", limits.MaxPaths))
	}
	return nil
}

// GenerateGraph rebuilds the graph for the configured dictionary and stores
// it in the cache.
func (a *App) GenerateGraph(ctx context.Context, opts Options, out io.Writer) error {
	cfg, err := a.configure(opts)
	if err != nil {
		return err
	}

	loaded, err := a.provider.Load(ctx, request(cfg, true))
	if err != nil {
		return zerr.Wrap(err, "failed to generate graph")
	}

	_, err = fmt.Fprintf(out, "%s %d words %d edges\n",
		loaded.Key, loaded.Graph.NodeCount(), loaded.Graph.EdgeCount())
	return err
}

// query runs one search on the lowercased words and records its outcome.
func (a *App) query(
	ctx context.Context,
	g *domain.Graph,
	start, end string,
	mode SearchMode,
	limits domain.PathLimits,
) ([]domain.Path, bool, error) {
	start, end = strings.ToLower(start), strings.ToLower(end)

	began := time.Now()
	var (
		kind      string
		paths     []domain.Path
		truncated bool
		err       error
	)

	switch mode {
	case ModeAllShortest:
		kind = domain.QueryAllShortest
		paths, err = a.finder.AllShortestPaths(ctx, g, start, end)
	case ModeAll:
		kind = domain.QueryAll
		var set domain.PathSet
		set, err = a.finder.AllPaths(ctx, g, start, end, limits)
		paths, truncated = set.Paths, set.Truncated
	default:
		kind = domain.QueryShortest
		var (
			p     domain.Path
			found bool
		)
		p, found, err = a.finder.ShortestPath(ctx, g, start, end)
		if found {
			paths = []domain.Path{p}
		}
	}

	outcome := domain.OutcomeFound
	switch {
	case err != nil:
		outcome = domain.OutcomeError
	case len(paths) == 0:
		outcome = domain.OutcomeNotFound
	}
	a.metrics.Query(kind, outcome, time.Since(began))

	return paths, truncated, err
}

// configure loads the configuration file and applies the overrides in opts.
func (a *App) configure(opts Options) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.DictionaryPath != "" {
		cfg.DictionaryPath = opts.DictionaryPath
	}
	if opts.CacheDir != "" {
		cfg.CacheDir = opts.CacheDir
	}
	if opts.CacheBackend != "" {
		cfg.CacheBackend = opts.CacheBackend
	}

	if toggler, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		toggler.SetJSON(cfg.LogFormat == domain.LogFormatJSON)
	}
	return cfg, nil
}

func request(cfg *domain.Config, rebuild bool) provider.Request {
	return provider.Request{
		DictionaryPath: cfg.DictionaryPath,
		CacheDir:       cfg.CacheDir,
		CacheBackend:   cfg.CacheBackend,
		Rebuild:        rebuild,
	}
}
