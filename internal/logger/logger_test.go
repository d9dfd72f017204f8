package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"kind": "link", "stories": 12})
	log.Info("catalog loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "catalog loaded", entry["message"])
	require.Equal(t, "link", entry["kind"])
	require.InDelta(t, 12, entry["stories"], 0)
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.DebugEnabled())
}

func TestLoggerErrorIncludesStory(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	require.True(t, log.DebugEnabled())

	log.WithStory("components-link--white").Error(errors.New("boom"), "render failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "render failed", entry["message"])
	require.Equal(t, "components-link--white", entry["story"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("stylesheet missing")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "stylesheet missing")
	require.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	require.Nil(t, nilLogger.WithStory("x"))
	require.False(t, nilLogger.DebugEnabled())
	nilLogger.Info("ignored")
	nilLogger.Error(errors.New("ignored"), "ignored")

	nop := Nop()
	nop.WithStory("x").Warn("ignored")
	require.False(t, nop.DebugEnabled())
}
