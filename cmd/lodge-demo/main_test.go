package main

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lodge/internal/platform/logger"
)

// createTempConfigFile creates a temporary config.yaml file with the given content
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o644)
	require.NoError(t, err, "Failed to create temporary config file")

	return configPath
}

func TestInitializeAppFromFile(t *testing.T) {
	originalSlog := slog.Default()
	originalLogger := logger.Default()
	t.Cleanup(func() {
		slog.SetDefault(originalSlog)
		logger.SetDefault(originalLogger)
	})

	logPath := filepath.Join(t.TempDir(), "demo.log")
	configPath := createTempConfigFile(t, "logger:\n  path: "+logPath+"\n  level: warning\n  disable_timestamp: true\n  thread_safe: true\n")

	l, err := initializeApp(configPath)
	require.NoError(t, err, "Application initialization should succeed")
	require.NotNil(t, l)

	assert.Same(t, l, logger.Default())
	assert.Equal(t, logger.LevelWarning, l.Level())
	assert.Equal(t, logPath, l.Path())

	slog.Info("suppressed")
	slog.Warn("via slog", "n", 1)
	require.NoError(t, l.Teardown())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "[WARNING]: via slog n=1\n", string(data))
}

func TestInitializeAppInvalidConfig(t *testing.T) {
	configPath := createTempConfigFile(t, "logger:\n  level: chatty\n")

	l, err := initializeApp(configPath)

	assert.Nil(t, l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

// TestRunEndToEnd runs the program body in a child process and checks the
// lines it leaves behind and its exit status.
func TestRunEndToEnd(t *testing.T) {
	if path := os.Getenv("LODGE_DEMO_CONFIG"); path != "" {
		l, err := initializeApp(path)
		if err != nil {
			os.Exit(3)
		}
		run(l)
		return
	}

	configPath := createTempConfigFile(t, "logger:\n  disable_timestamp: true\n")

	cmd := exec.Command(os.Args[0], "-test.run=^TestRunEndToEnd$")
	cmd.Env = append(os.Environ(), "LODGE_DEMO_CONFIG="+configPath)
	out, err := cmd.Output()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Equal(t,
		"[INFO]: Application started\n"+
			"[DEBUG]: Debugging value: 100\n"+
			"[INFO]: logger ready path=\"\" timestamp=false\n"+
			"[FATAL]: boom\n",
		string(out))
}
