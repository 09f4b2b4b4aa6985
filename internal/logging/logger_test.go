package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initFile(t *testing.T, level slog.Level, format LogFormat) string {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "logs", "lessonpad.log")
	require.NoError(t, Init(Config{
		FilePath:   logFile,
		Level:      level,
		Format:     format,
		MaxSizeMB:  10,
		MaxBackups: 2,
	}))
	t.Cleanup(func() { assert.NoError(t, Shutdown()) })
	return logFile
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name: "text file in a missing directory",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "nested", "test.log"),
				Level:      slog.LevelInfo,
				Format:     FormatText,
				MaxSizeMB:  10,
				MaxBackups: 2,
			},
		},
		{
			name:   "empty filepath creates noop logger",
			config: Config{Level: slog.LevelInfo},
		},
		{
			name: "json format",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "test.log"),
				Level:      slog.LevelDebug,
				Format:     FormatJSON,
				MaxSizeMB:  10,
				MaxBackups: 2,
				Compress:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Init(tt.config))
			defer Shutdown()

			logger := Get()
			require.NotNil(t, logger)
			assert.Equal(t, tt.config.FilePath != "", logger.IsEnabled())

			logger.Info("test message")
			logger.Debug("test debug")
			logger.Warn("test warning")
			logger.Error("test error")
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestIsEnabled(t *testing.T) {
	require.NoError(t, Init(Config{}))
	assert.False(t, IsEnabled())

	initFile(t, slog.LevelInfo, FormatText)
	assert.True(t, IsEnabled())

	require.NoError(t, Shutdown())
	assert.False(t, IsEnabled(), "shutdown falls back to noop")
}

func TestComponent(t *testing.T) {
	logFile := initFile(t, slog.LevelInfo, FormatText)

	Component("menu").Info("opened", "items", 12)

	out := readLog(t, logFile)
	assert.Contains(t, out, "app=lessonpad")
	assert.Contains(t, out, "component=menu")
	assert.Contains(t, out, "items=12")
}

func TestWith_Noop(t *testing.T) {
	require.NoError(t, Init(Config{}))

	assert.False(t, Get().With("k", "v").IsEnabled())
}

func TestPackageLevelFunctions(t *testing.T) {
	logFile := initFile(t, slog.LevelWarn, FormatJSON)

	Debug("debug message", "key", "value")
	Info("info message", "key", "value")
	Warn("warn message", "key", "value")
	Error("error message", "key", "value")

	out := readLog(t, logFile)
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, `"msg":"warn message"`)
	assert.Contains(t, out, `"msg":"error message"`)
}
