package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ladder/internal/adapters/telemetry/progrock"
	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Stages(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	stages := []string{
		domain.StageLoadDictionary,
		domain.StageFingerprint,
		domain.StageCacheLookup,
		domain.StageBuildGraph,
		domain.StageCacheStore,
	}
	for _, stage := range stages {
		stageCtx, vertex := recorder.Record(ctx, stage)

		got, ok := ports.VertexFromContext(stageCtx)
		require.True(t, ok)
		assert.Equal(t, vertex, got)

		_, err := vertex.Stdout().Write([]byte(stage + "\n"))
		require.NoError(t, err)
		vertex.Log(domain.LogLevelDebug, "debug msg")
	}

	_, hit := recorder.Record(ctx, domain.StageCacheLookup)
	hit.Cached()
	hit.Complete(nil)

	_, failed := recorder.Record(ctx, domain.StageCacheStore)
	failed.Complete(errors.New("disk full"))

	assert.NoError(t, recorder.Close())
}
