package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" Warning "))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, "WARN", LevelWarn.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelInfo}).With(Component("router"))

	log.Debug("hidden")
	log.Info("command failed", CommandWord("mark"), StudentIndex(2), Err(errors.New("boom")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var e map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &e))
	assert.Equal(t, "INFO", e["level"])
	assert.Equal(t, "command failed", e["message"])

	fields := e["fields"].(map[string]any)
	assert.Equal(t, "router", fields["component"])
	assert.Equal(t, "mark", fields["command"])
	assert.Equal(t, float64(2), fields["student_index"])
	assert.Equal(t, "boom", fields["error"])

	_, err := time.Parse(time.RFC3339Nano, e["timestamp"].(string))
	assert.NoError(t, err)
}

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelDebug, Format: FormatText})

	log.Warn("slow save", Latency(1500*time.Millisecond), Driver("file"))

	line := buf.String()
	assert.Contains(t, line, "WARN  slow save driver=file latency=1.5s")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestLogger_WithDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Options{Output: &buf, Format: FormatText})
	_ = parent.With(String("child", "yes"))

	parent.Info("plain")
	assert.NotContains(t, buf.String(), "child=yes")
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Output: &buf, AddCaller: true}).Error("with caller")
	assert.Contains(t, buf.String(), `"caller":"logger_test.go:`)
}

func TestNop(t *testing.T) {
	assert.False(t, Nop().Enabled(LevelError))
}

func TestContext(t *testing.T) {
	log := Nop()
	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
