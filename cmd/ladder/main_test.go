package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ladder/internal/adapters/telemetry"
	"go.trai.ch/ladder/internal/app"
	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/core/ports/mocks"
	"go.trai.ch/ladder/internal/engine/pathfinder"
	"go.uber.org/mock/gomock"
)

func components(t *testing.T) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	application := app.New(loader, nil, pathfinder.New(), nil, metrics, logger)
	return app.NewComponents(application, logger, nil, telemetry.NewNoOp()), loader, logger
}

func TestRun_Success(t *testing.T) {
	c, _, _ := components(t)
	provider := func(context.Context) (*app.Components, error) { return c, nil }

	stderr := new(bytes.Buffer)
	assert.Equal(t, 0, run(context.Background(), []string{"version"}, stderr, provider))
	assert.Empty(t, stderr.String())
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	assert.Equal(t, 1, run(context.Background(), []string{"version"}, stderr, provider))
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	c, loader, logger := components(t)
	loader.EXPECT().Load(domain.ConfigFileName).Return(nil, domain.ErrConfigReadFailed)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
	})
	provider := func(context.Context) (*app.Components, error) { return c, nil }

	assert.Equal(t, 1, run(context.Background(), []string{"generate-graph"}, new(bytes.Buffer), provider))
}

func TestRun_UnknownCommand(t *testing.T) {
	c, _, logger := components(t)
	logger.EXPECT().Error(gomock.Any())
	provider := func(context.Context) (*app.Components, error) { return c, nil }

	assert.Equal(t, 1, run(context.Background(), []string{"frobnicate"}, new(bytes.Buffer), provider))
}
