package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/pageview/internal/config"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("HOME", tmp)
	config.Load()
	return tmp
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)

	t.Setenv("PAGEVIEW_LOGGING_ENABLED", "true")
	t.Setenv("PAGEVIEW_LOGGING_LEVEL", "warn")
	t.Setenv("PAGEVIEW_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestDebugForcesDebugLevel(t *testing.T) {
	setupTest(t)

	t.Setenv("PAGEVIEW_DEBUG", "true")
	t.Setenv("PAGEVIEW_LOGGING_LEVEL", "error")
	config.Load()

	require.Equal(t, "debug", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	dir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "pageview", "logs"), dir)
	require.DirExists(t, dir)
}

func TestInitDisabledIsNoop(t *testing.T) {
	setupTest(t)

	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, l)
	require.NoError(t, l.Shutdown())
}

func TestInitWritesJSON(t *testing.T) {
	setupTest(t)

	l, err := Init(Config{Enabled: true, Level: "debug", MaxFiles: 3, Command: "read", PID: 42})
	require.NoError(t, err)
	l.With("component", "pager").Debug("settled", "index", 3)
	path := l.(*fileLogger).path
	require.NoError(t, l.Shutdown())

	require.True(t, strings.HasPrefix(filepath.Base(path), "pageview_"))
	require.True(t, strings.HasSuffix(path, "_PID42_read.log"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	require.Equal(t, "settled", entry["msg"])
	require.Equal(t, "pager", entry["component"])
	require.EqualValues(t, 3, entry["index"])
	require.EqualValues(t, 42, entry["pid"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Info("hidden")
	l.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestRotateKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("pageview_%d.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0600))
		mtime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
	other := filepath.Join(dir, "unrelated.log")
	require.NoError(t, os.WriteFile(other, nil, 0600))

	require.NoError(t, rotate(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"pageview_3.log", "pageview_4.log", "unrelated.log"}, names)
}

func TestGlobalLoggerLifecycle(t *testing.T) {
	setupTest(t)
	t.Setenv("PAGEVIEW_LOGGING_ENABLED", "true")
	config.Load()
	t.Cleanup(func() { _ = ShutdownGlobal() })

	require.Empty(t, CurrentLogFile())
	require.NoError(t, InitGlobal())
	path := CurrentLogFile()
	require.NotEmpty(t, path)

	Component("test").Info("hello")
	require.NoError(t, InitGlobal())
	require.Equal(t, path, CurrentLogFile())

	require.NoError(t, ShutdownGlobal())
	require.Empty(t, CurrentLogFile())
	require.IsType(t, noopLogger{}, GetGlobal())
}
