package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level string, format LogFormat) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := &Logger{
		level:  parseLogLevel(level),
		fields: make(map[string]interface{}),
	}
	logger.AddOutput(NewConsoleOutput(&buf, format))
	return logger, &buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger("warn", FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("also shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown")
	assert.Contains(t, out, "[ERROR] also shown")
}

func TestLoggerFieldsSortedInTextOutput(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatText)

	logger.Info("msg", Field{Key: "zeta", Value: 1}, Field{Key: "alpha", Value: 2})

	line := strings.TrimSpace(buf.String())
	assert.Less(t, strings.Index(line, "alpha="), strings.Index(line, "zeta="))
}

func TestLoggerWithAddsPersistentFields(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatText)

	logger.With(Field{Key: "lane", Value: "work"}).Info("placed")
	assert.Contains(t, buf.String(), "lane=work")
}

func TestLoggerJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatJSON)

	logger.Info("hello", Field{Key: "n", Value: 3})

	line := strings.TrimSpace(buf.String())
	require.True(t, strings.HasPrefix(line, "{"))
	assert.Contains(t, line, `"message":"hello"`)
	assert.Contains(t, line, `"level":"INFO"`)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, LevelInfo, parseLogLevel("bogus"))
}
