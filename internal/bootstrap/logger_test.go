package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/tinklepaw-gacha/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for day := 1; day <= 12; day++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", day))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2026-01-03_00-00-00.log")
	assert.Contains(t, names, "session_2026-01-04_00-00-00.log")
	assert.Contains(t, names, "session_2026-01-12_00-00-00.log")
}

func TestCleanupLogs_MissingDir(t *testing.T) {
	assert.NotPanics(t, func() {
		cleanupLogs(filepath.Join(t.TempDir(), "missing"), 9)
	})
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{
		LogDir:      dir,
		LogLevel:    "debug",
		LogFormat:   "json",
		ServiceName: "tinklepaw-gacha",
		Environment: "test",
	}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)

	slog.Info("hello from test")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), `"service":"tinklepaw-gacha"`)
}
