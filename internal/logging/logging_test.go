package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := map[string]struct {
		verbosity int
		want      zerolog.Level
	}{
		"negative": {verbosity: -1, want: zerolog.WarnLevel},
		"default":  {verbosity: 0, want: zerolog.WarnLevel},
		"info":     {verbosity: 1, want: zerolog.InfoLevel},
		"debug":    {verbosity: 2, want: zerolog.DebugLevel},
		"trace":    {verbosity: 5, want: zerolog.TraceLevel},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.verbosity))
		})
	}
}

// Not parallel: SetupLogger mutates the global logger.
func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(&buf, 2)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "Logger initialized")

	buf.Reset()
	LogDuration(GetLogger("render"), time.Now(), "format")
	out := buf.String()
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "component=render")
	assert.Contains(t, out, "operation=format")
}

func TestSetupLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(&buf, 0)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	logger := GetLogger("x")
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}
