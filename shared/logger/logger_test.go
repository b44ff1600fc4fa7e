package logger_test

import (
	"bytes"
	"errors"
	"pureheart/config"
	"pureheart/shared/constant"
	"pureheart/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// restoreLogger puts the global logger state back once the test ends.
func restoreLogger(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()
	timeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = timeFormat
	})
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	return &buf
}

func TestInitLogger(t *testing.T) {
	restoreLogger(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "", want: zerolog.TraceLevel},
		{level: "verbose", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restoreLogger(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level
			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restoreLogger(t)
	buf := capture(t)

	logger.ErrorWithStack(errors.New("failed to reassign reservation"))

	assert.Contains(t, buf.String(), "failed to reassign reservation")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestConfigure(t *testing.T) {
	t.Run("tags entries with the application name", func(t *testing.T) {
		restoreLogger(t)
		buf := capture(t)

		cfg := &config.Config{}
		cfg.App.Name = "pureheart"
		cfg.Server.LogLevel = "info"
		logger.Configure(cfg)

		log.Info().Msg("layout saved")

		assert.Contains(t, buf.String(), `"app":"pureheart"`)
	})

	t.Run("respects the configured level", func(t *testing.T) {
		restoreLogger(t)
		buf := capture(t)

		cfg := &config.Config{}
		cfg.App.Name = "pureheart"
		cfg.Server.LogLevel = "warn"
		logger.Configure(cfg)

		log.Info().Msg("availability cached")
		log.Warn().Msg("events disabled")

		assert.NotContains(t, buf.String(), "availability cached")
		assert.Contains(t, buf.String(), "events disabled")
	})

	t.Run("production switches to json on stdout", func(t *testing.T) {
		restoreLogger(t)

		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvProduction
		cfg.Server.LogLevel = "error"

		assert.NotPanics(t, func() { logger.Configure(cfg) })
		assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
	})
}
