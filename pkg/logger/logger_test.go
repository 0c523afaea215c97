package logger_test

import (
	"context"
	"testing"

	"taxapp/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, environment := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		require.NotPanics(t, func() {
			logger.Setup(environment)
		})
		require.NotNil(t, logger.Get(context.Background()))
	}
}

func TestGet_FallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	l := logger.Get(context.Background())
	require.NotNil(t, l, "should return default logger when context has no logger")
}

func TestWithLogger_RoundTrip(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom, _ := zap.NewDevelopment()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Equal(t, custom, logger.Get(ctx))
}

func TestWithFields_AttachesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("channel", "SMS"))

	logger.Info(ctx, "dispatched")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "dispatched", entries[0].Message)
	require.Equal(t, "SMS", entries[0].ContextMap()["channel"])
}

func TestLevelHelpers_WriteToContextLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	require.Len(t, logs.All(), 4)
}
