package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/firstsource-health/firstsource-core/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	t.Run("default level is info", func(t *testing.T) {
		logger, err := New(config.LogConfig{}, false)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("configured level", func(t *testing.T) {
		logger, err := New(config.LogConfig{Level: "warn"}, false)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("verbose forces debug", func(t *testing.T) {
		logger, err := New(config.LogConfig{Level: "error"}, true)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "loud"}, false)
		require.Error(t, err)
	})
}
