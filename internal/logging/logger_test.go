package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", want: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", want: zerolog.InfoLevel},
		{name: "invalid defaults to info", level: "chatty", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLogger(Config{Level: tt.level}, &bytes.Buffer{})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewLogger_JSONWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "debug", Format: FormatJSON}, &buf)
	l = ComponentLogger(l, "house_list")

	ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")
	l.Debug().Ctx(ctx).Int("records", 3).Msg("house list rendered")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "house_list", entry["component"])
	assert.Equal(t, "01TESTTRACE", entry[TraceIDField])
	assert.Equal(t, "house list rendered", entry["message"])
	assert.InDelta(t, 3.0, entry["records"], 0)
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Format: FormatConsole}, &buf)
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "debug", Format: FormatJSON, Caller: true}, &buf)
	l.Debug().Msg("with caller")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry[zerolog.CallerFieldName], "logger_test.go")
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "houselist.log")
		result := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
		t.Cleanup(func() { _ = result.Close() })

		require.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)
		result.Logger.Info().Msg("to file")
		require.NoError(t, result.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to file")
	})

	t.Run("file output without path falls back", func(t *testing.T) {
		result := NewLoggerWithPath(Config{Output: OutputFile})
		assert.False(t, result.UsingFile)
		assert.True(t, result.FallbackUsed)
		assert.NotEmpty(t, result.FallbackReason)
	})

	t.Run("discard output", func(t *testing.T) {
		result := NewLoggerWithPath(Config{Output: OutputDiscard})
		assert.Equal(t, zerolog.Disabled, result.Logger.GetLevel())
		assert.NoError(t, result.Close())
	})
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26)

	ctx = ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, GetOrGenerateTraceID(ctx))
	assert.NotEqual(t, generated, NewTraceID())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info"}, &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "denied")
	assert.Contains(t, buf.String(), "/tmp/x.log")
	assert.Contains(t, buf.String(), "denied")
}
