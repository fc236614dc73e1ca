package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDefaults(t *testing.T) {
	cfg, err := Process()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, ":50051", cfg.GrpcPort)
	assert.True(t, cfg.GrpcEnabled)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestProcessOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("GRPC_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Process()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPPort)
	assert.False(t, cfg.GrpcEnabled)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestProcessRejectsInvalidValues(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, err := Process()
	assert.Error(t, err)

	t.Setenv("SHUTDOWN_TIMEOUT", "0s")
	_, err = Process()
	assert.Error(t, err)

	t.Setenv("SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("METRICS_ENABLED", "maybe")
	_, err = Process()
	assert.Error(t, err)
}

func TestLevelFallback(t *testing.T) {
	cfg := &Config{LogLevel: "chatty"}
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}
