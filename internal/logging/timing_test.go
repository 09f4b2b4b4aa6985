package logging

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	logFile := initFile(t, slog.LevelDebug, FormatText)

	executed := false
	Time("render editor", func() {
		executed = true
	})

	assert.True(t, executed)
	out := readLog(t, logFile)
	assert.Contains(t, out, `msg="render editor"`)
	assert.Contains(t, out, "duration=")
}

func TestTimeWithNoLogging(t *testing.T) {
	require.NoError(t, Init(Config{}))

	executed := false
	Time("render editor", func() {
		executed = true
	})

	assert.True(t, executed)
}

func TestTimeWithResult(t *testing.T) {
	initFile(t, slog.LevelDebug, FormatText)

	result := TimeWithResult("filter commands", func() int {
		return 42
	})

	assert.Equal(t, 42, result)
}

func TestEndWithCount(t *testing.T) {
	logFile := initFile(t, slog.LevelDebug, FormatText)

	ctx := Start("recompute decorations")
	time.Sleep(time.Millisecond)
	EndWithCount(ctx, 7)
	End(Start("layout"))

	out := readLog(t, logFile)
	assert.Contains(t, out, `msg="recompute decorations"`)
	assert.Contains(t, out, "count=7")
	assert.Contains(t, out, "msg=layout")
}

func TestTimingAboveLevelIsSilent(t *testing.T) {
	logFile := initFile(t, slog.LevelInfo, FormatText)

	End(Start("layout"))
	Info("ready")

	out := readLog(t, logFile)
	assert.Contains(t, out, "msg=ready")
	assert.NotContains(t, out, "layout")
}

func TestStartEndWithNoLogging(t *testing.T) {
	require.NoError(t, Init(Config{}))

	ctx := Start("layout")
	End(ctx)
	EndWithCount(ctx, 50)
}

func TestLoggerTime(t *testing.T) {
	logFile := initFile(t, slog.LevelDebug, FormatText)

	executed := false
	Component("editor").Time("relayout", func() {
		executed = true
	})

	assert.True(t, executed)
	assert.Contains(t, readLog(t, logFile), "component=editor")
}
