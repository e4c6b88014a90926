package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCustomFileEncoderLayout(t *testing.T) {
	enc := &customFileEncoder{Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{})}
	entry := zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
		Message: "zero distance rows",
	}

	buf, err := enc.EncodeEntry(entry, []zapcore.Field{
		zap.Int("count", 2),
		zap.String("path", "trials.csv"),
		zap.Error(errors.New("boom")),
	})
	require.NoError(t, err)

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "2025-03-01 12:30:00     WARN zero distance rows\t"))
	assert.Contains(t, line, `"count":2`)
	assert.Contains(t, line, `"path":"trials.csv"`)
	assert.Contains(t, line, `"error":"boom"`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestExtractDuration(t *testing.T) {
	assert.Equal(t, int64(42), extractDuration([]zap.Field{zap.Int64("duration_ms", 42)}))
	assert.Equal(t, int64(0), extractDuration([]zap.Field{zap.String("duration_ms", "42")}))
	assert.Equal(t, int64(0), extractDuration(nil))
}

func TestInitWritesFileLog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	t.Cleanup(resetFileLog)

	LogInfo("figure saved", zap.String("name", "fig1_regression_detailed.png"))
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO figure saved")
	assert.Contains(t, string(data), "fig1_regression_detailed.png")
}

func TestInitReleasesPreviousLogFile(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	t.Cleanup(resetFileLog)

	require.NoError(t, Init(first))
	previous := fileWriter
	require.NotNil(t, previous)

	require.NoError(t, Init(second))
	assert.NotSame(t, previous, fileWriter)
	_, err := previous.file.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)

	LogInfo("after re-init")
	Sync()

	data, err := os.ReadFile(filepath.Join(second, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "after re-init")
	data, err = os.ReadFile(filepath.Join(first, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after re-init")
}

func resetFileLog() {
	mu.Lock()
	defer mu.Unlock()
	if fileWriter != nil {
		_ = fileWriter.Close()
		fileWriter = nil
	}
	Logger = zap.NewNop()
	fileLogger = Logger
}
