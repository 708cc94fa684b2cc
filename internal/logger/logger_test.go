package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"off", LevelNone},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.Debug("hidden %d", 1)
	log.Info("hidden %d", 2)
	log.Warn("shown %d", 3)
	log.Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN] shown 3")
	assert.Contains(t, out, "ERROR] shown 4")
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false)

	log.Debug("walking %s", "root")
	assert.Contains(t, buf.String(), "DEBUG] walking root")
	assert.Equal(t, LevelDebug, log.Level())
}

func TestLogger_Report(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.Report("Warning: Skipping file %s", "a.bin")
	assert.Equal(t, "Warning: Skipping file a.bin\n", buf.String())

	buf.Reset()
	require.NoError(t, log.SetLevel("error"))
	log.Report("Warning: Skipping file %s", "a.bin")
	assert.Empty(t, buf.String())
}
