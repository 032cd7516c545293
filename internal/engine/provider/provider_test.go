package provider_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ladder/internal/adapters/cas"
	"go.trai.ch/ladder/internal/adapters/telemetry"
	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/core/ports"
	"go.trai.ch/ladder/internal/core/ports/mocks"
	"go.trai.ch/ladder/internal/engine/builder"
	"go.trai.ch/ladder/internal/engine/provider"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const (
	dictPath = "/dict/words"
	cacheDir = "/cache"
)

var ladderWords = []string{"hit", "hot", "dot", "dog", "lot", "log", "cog"}

type fixture struct {
	loader  *mocks.MockDictionaryLoader
	cache   *mocks.MockGraphCache
	metrics *mocks.MockMetrics
	logger  *mocks.MockLogger
	p       *provider.Provider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:  mocks.NewMockDictionaryLoader(ctrl),
		cache:   mocks.NewMockGraphCache(ctrl),
		metrics: mocks.NewMockMetrics(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	f.p = provider.New(
		f.loader,
		map[string]ports.GraphCache{domain.CacheBackendFile: f.cache},
		telemetry.NewNoOp(),
		f.metrics,
		f.logger,
	)
	return f
}

func request() provider.Request {
	return provider.Request{
		DictionaryPath: dictPath,
		CacheDir:       cacheDir,
		CacheBackend:   domain.CacheBackendFile,
	}
}

func cachedEntry(t *testing.T, words []string) *domain.CacheEntry {
	t.Helper()
	g, err := builder.Build(words)
	require.NoError(t, err)
	return domain.NewCacheEntry(g)
}

func TestProvider_MissBuildsAndStores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := domain.NewGraphKey(ladderWords)

	f.loader.EXPECT().Load(dictPath).Return(ladderWords, nil).Times(2)
	f.cache.EXPECT().Lookup(gomock.Any(), cacheDir, key).Return(nil, nil)
	f.metrics.EXPECT().CacheLookup(domain.CacheResultMiss)
	f.metrics.EXPECT().GraphBuilt(7, 9, gomock.Any())
	f.cache.EXPECT().Store(gomock.Any(), cacheDir, key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ domain.GraphKey, entry *domain.CacheEntry) error {
			assert.Equal(t, ladderWords, entry.Nodes)
			assert.Empty(t, entry.Verify(key))
			return nil
		})

	loaded, err := f.p.Load(ctx, request())
	require.NoError(t, err)
	assert.Equal(t, provider.SourceBuilt, loaded.Source)
	assert.Equal(t, key, loaded.Key)
	assert.Equal(t, 9, loaded.Graph.EdgeCount())

	// The second request is served from memory.
	f.metrics.EXPECT().CacheLookup(domain.CacheResultMemory)

	again, err := f.p.Load(ctx, request())
	require.NoError(t, err)
	assert.Equal(t, provider.SourceMemory, again.Source)
	assert.Same(t, loaded.Graph, again.Graph)
}

func TestProvider_CacheHitSkipsBuilder(t *testing.T) {
	f := newFixture(t)
	key := domain.NewGraphKey(ladderWords)
	entry := cachedEntry(t, ladderWords)

	f.loader.EXPECT().Load(dictPath).Return(ladderWords, nil)
	f.cache.EXPECT().Lookup(gomock.Any(), cacheDir, key).Return(entry, nil)
	f.metrics.EXPECT().CacheLookup(domain.CacheResultHit)

	loaded, err := f.p.Load(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, provider.SourceCache, loaded.Source)
	assert.Equal(t, entry.Nodes, loaded.Graph.Words())
	assert.Equal(t, entry.Edges, loaded.Graph.Edges())
}

func TestProvider_CorruptEntryIsDiscardedAndRebuilt(t *testing.T) {
	f := newFixture(t)
	key := domain.NewGraphKey(ladderWords)
	corrupt := zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "node count mismatch"), "key", key.String())

	f.loader.EXPECT().Load(dictPath).Return(ladderWords, nil)
	gomock.InOrder(
		f.cache.EXPECT().Lookup(gomock.Any(), cacheDir, key).Return(nil, corrupt),
		f.cache.EXPECT().Discard(gomock.Any(), cacheDir, key).Return(nil),
		f.cache.EXPECT().Store(gomock.Any(), cacheDir, key, gomock.Any()).Return(nil),
	)
	f.metrics.EXPECT().CacheLookup(domain.CacheResultCorrupt)
	f.metrics.EXPECT().GraphBuilt(7, 9, gomock.Any())
	f.logger.EXPECT().Warn(gomock.Any())

	loaded, err := f.p.Load(context.Background(), request())
	require.NoError(t, err, "corruption is never surfaced to the caller")
	assert.Equal(t, provider.SourceBuilt, loaded.Source)
}

func TestProvider_EntryViolatingGraphInvariantsIsCorrupt(t *testing.T) {
	f := newFixture(t)
	key := domain.NewGraphKey(ladderWords)

	// Checksum and fingerprint agree but the adjacency is asymmetric.
	entry := cachedEntry(t, ladderWords)
	entry.Edges[0] = append(entry.Edges[0], 6)
	entry.Checksum = entry.ComputeChecksum()

	f.loader.EXPECT().Load(dictPath).Return(ladderWords, nil)
	f.cache.EXPECT().Lookup(gomock.Any(), cacheDir, key).Return(entry, nil)
	f.cache.EXPECT().Discard(gomock.Any(), cacheDir, key).Return(nil)
	f.cache.EXPECT().Store(gomock.Any(), cacheDir, key, gomock.Any()).Return(nil)
	f.metrics.EXPECT().CacheLookup(domain.CacheResultCorrupt)
	f.metrics.EXPECT().GraphBuilt(7, 9, gomock.Any())
	f.logger.EXPECT().Warn(gomock.Any())

	loaded, err := f.p.Load(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.Graph.EdgeCount())
}

func TestProvider_CacheFailuresAreWarnings(t *testing.T) {
	f := newFixture(t)
	key := domain.NewGraphKey(ladderWords)

	f.loader.EXPECT().Load(dictPath).Return(ladderWords, nil)
	f.cache.EXPECT().Lookup(gomock.Any(), cacheDir, key).Return(nil, errors.New("permission denied"))
	f.cache.EXPECT().Store(gomock.Any(), cacheDir, key, gomock.Any()).Return(errors.New("disk full"))
	f.metrics.EXPECT().CacheLookup(domain.CacheResultError)
	f.metrics.EXPECT().GraphBuilt(7, 9, gomock.Any())
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	g, err := f.p.Graph(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, 7, g.NodeCount())
}

func TestProvider_RebuildSkipsLookups(t *testing.T) {
	f := newFixture(t)
	key := domain.NewGraphKey(ladderWords)
	req := request()
	req.Rebuild = true

	f.loader.EXPECT().Load(dictPath).Return(ladderWords, nil).Times(2)
	f.cache.EXPECT().Store(gomock.Any(), cacheDir, key, gomock.Any()).Return(nil).Times(2)
	f.metrics.EXPECT().GraphBuilt(7, 9, gomock.Any()).Times(2)

	first, err := f.p.Load(context.Background(), req)
	require.NoError(t, err)
	second, err := f.p.Load(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, provider.SourceBuilt, second.Source)
	assert.NotSame(t, first.Graph, second.Graph)
}

func TestProvider_DictionaryError(t *testing.T) {
	f := newFixture(t)
	readErr := zerr.With(zerr.Wrap(errors.New("no such file"), domain.ErrDictionaryRead.Error()), "path", dictPath)

	f.loader.EXPECT().Load(dictPath).Return(nil, readErr)

	_, err := f.p.Graph(context.Background(), request())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDictionaryRead.Error())
}

func TestProvider_UnknownBackend(t *testing.T) {
	f := newFixture(t)
	req := request()
	req.CacheBackend = "s3"

	_, err := f.p.Graph(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownCacheBackend))
}

func TestProvider_DictionaryChangeIsANewGraph(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	changed := append([]string{"hat"}, ladderWords...)

	gomock.InOrder(
		f.loader.EXPECT().Load(dictPath).Return(ladderWords, nil),
		f.loader.EXPECT().Load(dictPath).Return(changed, nil),
	)
	f.cache.EXPECT().Lookup(gomock.Any(), cacheDir, gomock.Any()).Return(nil, nil).Times(2)
	f.cache.EXPECT().Store(gomock.Any(), cacheDir, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.metrics.EXPECT().CacheLookup(domain.CacheResultMiss).Times(2)
	f.metrics.EXPECT().GraphBuilt(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	before, err := f.p.Load(ctx, request())
	require.NoError(t, err)
	after, err := f.p.Load(ctx, request())
	require.NoError(t, err)

	assert.NotEqual(t, before.Key, after.Key)
	assert.Equal(t, 8, after.Graph.NodeCount())
}

func TestProvider_ConcurrentRequestsBuildOnce(t *testing.T) {
	f := newFixture(t)
	key := domain.NewGraphKey(ladderWords)

	f.loader.EXPECT().Load(dictPath).Return(ladderWords, nil).AnyTimes()
	f.cache.EXPECT().Lookup(gomock.Any(), cacheDir, key).
		DoAndReturn(func(context.Context, string, domain.GraphKey) (*domain.CacheEntry, error) {
			time.Sleep(20 * time.Millisecond)
			return nil, nil
		}).Times(1)
	f.cache.EXPECT().Store(gomock.Any(), cacheDir, key, gomock.Any()).Return(nil).Times(1)
	f.metrics.EXPECT().CacheLookup(domain.CacheResultMiss).Times(1)
	f.metrics.EXPECT().CacheLookup(domain.CacheResultMemory).AnyTimes()
	f.metrics.EXPECT().GraphBuilt(7, 9, gomock.Any()).Times(1)

	const callers = 16
	graphs := make([]*domain.Graph, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Go(func() {
			g, err := f.p.Graph(context.Background(), request())
			assert.NoError(t, err)
			graphs[i] = g
		})
	}
	wg.Wait()

	for _, g := range graphs {
		assert.Same(t, graphs[0], g)
	}
}

func TestProvider_RestartUsesPersistedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	store, err := cas.NewStore()
	require.NoError(t, err)

	newProvider := func() (*provider.Provider, *mocks.MockMetrics) {
		loader := mocks.NewMockDictionaryLoader(ctrl)
		loader.EXPECT().Load(dictPath).Return(ladderWords, nil)
		m := mocks.NewMockMetrics(ctrl)
		p := provider.New(
			loader,
			map[string]ports.GraphCache{domain.CacheBackendFile: store},
			telemetry.NewNoOp(),
			m,
			mocks.NewMockLogger(ctrl),
		)
		return p, m
	}

	req := provider.Request{DictionaryPath: dictPath, CacheDir: dir, CacheBackend: domain.CacheBackendFile}

	first, m := newProvider()
	m.EXPECT().CacheLookup(domain.CacheResultMiss)
	m.EXPECT().GraphBuilt(7, 9, gomock.Any())
	built, err := first.Load(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, provider.SourceBuilt, built.Source)

	// A fresh provider stands in for a new process.
	second, m := newProvider()
	m.EXPECT().CacheLookup(domain.CacheResultHit)
	reloaded, err := second.Load(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, provider.SourceCache, reloaded.Source)
	assert.Equal(t, built.Graph.Words(), reloaded.Graph.Words())
	assert.Equal(t, built.Graph.Edges(), reloaded.Graph.Edges())
}
