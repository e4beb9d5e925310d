package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		level    string
		expected slog.Level
	}{
		{level: "debug", expected: slog.LevelDebug},
		{level: "info", expected: slog.LevelInfo},
		{level: "warn", expected: slog.LevelWarn},
		{level: "error", expected: slog.LevelError},
		{level: "", expected: slog.LevelInfo},
		{level: "verbose", expected: slog.LevelInfo},
	}
	for _, tt := range cases {
		t.Run(tt.level, func(t *testing.T) {
			require.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestSetupWriterJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	SetupWriter(&buf, "warn", "json")
	WithComponent("build").Info("dropped")
	WithComponent("build").Warn("kept", "terms", 3)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	require.Equal(t, "kept", line["msg"])
	require.Equal(t, "build", line["component"])
	require.Equal(t, float64(3), line["terms"])
}

func TestSetupWriterText(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	SetupWriter(&buf, "debug", "text")
	WithComponent("query").Debug("loaded")
	require.Contains(t, buf.String(), "msg=loaded")
	require.Contains(t, buf.String(), "component=query")
}
