package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orbitwatch/debris-tracker/internal/logger"
)

func TestInitialize(t *testing.T) {
	t.Run("debug config without sentry", func(t *testing.T) {
		err := logger.Initialize(logger.Config{Debug: true})
		require.NoError(t, err)
		assert.NotNil(t, logger.Default())
	})

	t.Run("production config without sentry", func(t *testing.T) {
		err := logger.Initialize(logger.Config{})
		require.NoError(t, err)
		assert.NotNil(t, logger.Default())
	})
}

func TestContextWrappers(t *testing.T) {
	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	ctx := context.Background()

	// each level has a context-aware wrapper; none may panic, with or
	// without a context
	logger.InfoCtx(ctx, "info message", zap.String("key", "value"))
	logger.WarnCtx(ctx, "warn message", zap.Int("attempt", 1))
	logger.ErrorCtx(ctx, assert.AnError)
	logger.ErrorCtx(ctx, nil)

	assert.NotNil(t, logger.FromContext(ctx))
	assert.NotNil(t, logger.FromContext(nil))
}
