package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/rocalc/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, closer := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", "item", "Sword")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "item=Sword")
}

func TestNew_JSONAndFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rocalc.log")
	var buf bytes.Buffer
	log, closer := New(config.LogConfig{Level: "debug", Format: "json", File: path, MaxSizeMB: 1}, &buf)

	log.With("cmd", "damage").Debug("damage computed", "max", 591)
	require.NoError(t, closer.Close())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "damage computed", rec["msg"])
	assert.Equal(t, "damage", rec["cmd"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"max":591`)
}
