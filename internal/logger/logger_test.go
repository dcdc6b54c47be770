package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restoreGlobals(t *testing.T) {
	level := zerolog.GlobalLevel()
	logger := log.Logger
	contextLogger := zerolog.DefaultContextLogger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
		zerolog.DefaultContextLogger = contextLogger
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		want      zerolog.Level
		wantKnown bool
	}{
		{name: "", want: zerolog.InfoLevel, wantKnown: true},
		{name: "debug", want: zerolog.DebugLevel, wantKnown: true},
		{name: " WARN ", want: zerolog.WarnLevel, wantKnown: true},
		{name: "error", want: zerolog.ErrorLevel, wantKnown: true},
		{name: "trace", want: zerolog.TraceLevel, wantKnown: true},
		{name: "verbose", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, known := ParseLevel(tt.name)
			assert.Equal(t, tt.want, level)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

// TestInit tests the JSON output, the service field and the level filter.
func TestInit(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	level := Init(Config{Level: "warn", Service: "print-quote-service", Output: &buf})

	log.Info().Msg("hidden")
	log.Warn().Str("ref", "D-000001").Msg("Ledger push failed")

	assert.Equal(t, zerolog.WarnLevel, level)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"service":"print-quote-service"`)
	assert.Contains(t, buf.String(), `"ref":"D-000001"`)
	assert.Contains(t, buf.String(), `"time":`)
}

func TestInit_Pretty(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	Init(Config{Level: "info", Pretty: true, Output: &buf})
	log.Info().Msg("Application initialized")

	assert.Contains(t, buf.String(), "Application initialized")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestInit_UnknownLevel(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	level := Init(Config{Level: "verbose", Output: &buf})

	assert.Equal(t, zerolog.InfoLevel, level)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "Unknown log level")
}

// TestInit_ContextFallback tests that loggers read from a bare context use
// the configured logger.
func TestInit_ContextFallback(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	Init(Config{Output: &buf, Service: "quotectl"})
	zerolog.Ctx(t.Context()).Info().Msg("from context")

	assert.Contains(t, buf.String(), `"service":"quotectl"`)
}
