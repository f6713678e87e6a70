package logger

import (
	"log"
	"testing"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		level         string
		expectedError bool
		expectedLvl   zapcore.Level
	}{
		{level: "debug", expectedLvl: zapcore.DebugLevel},
		{level: "info", expectedLvl: zapcore.InfoLevel},
		{level: "warn", expectedLvl: zapcore.WarnLevel},
		{level: "error", expectedLvl: zapcore.ErrorLevel},
		{level: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.level})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, zap.L().Core().Enabled(tt.expectedLvl))
			if tt.expectedLvl > zapcore.DebugLevel {
				require.False(t, zap.L().Core().Enabled(tt.expectedLvl-1))
			}
		})
	}
}

func TestNewTagsService(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger, err := New("debug", zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))
	require.NoError(t, err)

	logger.Info("order created", zap.Int("order_id", 10))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "order created", entries[0].Message)
	assert.Equal(t, serviceName, entries[0].ContextMap()["service"])
	assert.Equal(t, int64(10), entries[0].ContextMap()["order_id"])
}

func TestInitLoggerRedirectsStdLog(t *testing.T) {
	require.NoError(t, InitLogger(&config.Config{LogLvl: "info"}))
	assert.NotPanics(t, func() { log.Print("http: TLS handshake error") })
}
