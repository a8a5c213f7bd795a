package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Logger = (*StructuredLogger)(nil)
	_ Logger = NoOpLogger{}
	_ Logger = (*SlogAdapter)(nil)
)

func newBufferLogger(level LogLevel, format string) (*StructuredLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewLogger(&LoggerConfig{Level: level, Format: format, Output: buf}), buf
}

func TestStructuredLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn, "text")

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestStructuredLogger_ComponentAndContext(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug, "json")

	l.WithComponent("pipeline").WithContext("topic", "tênis").Debug("start")

	out := buf.String()
	assert.Contains(t, out, `"component":"pipeline"`)
	assert.Contains(t, out, `"topic":"tênis"`)
	assert.Contains(t, out, `"msg":"start"`)
}

func TestStructuredLogger_WithDoesNotMutateParent(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo, "text")

	_ = l.WithContext("child", true)
	l.Info("parent")

	assert.NotContains(t, buf.String(), "child")
}

func TestStructuredLogger_LogStage(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo, "text")

	l.LogStage("plan", time.Second, true, nil)
	assert.Contains(t, buf.String(), "Stage completed")

	buf.Reset()
	l.LogStage("plan", time.Second, false, errors.New("quota"))
	assert.Contains(t, buf.String(), "Stage failed")
	assert.Contains(t, buf.String(), "quota")
}

func TestStructuredLogger_LogLLMCall(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo, "text")

	l.LogLLMCall("gemini-2.0-flash", 42, time.Millisecond, true, nil)
	assert.Contains(t, buf.String(), "LLM call completed")
	assert.Contains(t, buf.String(), "response_chars=42")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
