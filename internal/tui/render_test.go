package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/houselist/internal/listing"
)

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	records := listing.Append(scenarioHouses(), listing.NewHouse())

	require.NoError(t, RenderPlain(&buf, "", records, usdFormatter(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, DefaultTitle, lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, []string{"ID", "Address", "Country", "Asking", "Price"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"1", "A", "USA", "$500,000.00"}, strings.Fields(lines[3]))
	assert.Contains(t, lines[4], "32 Valley Way, New York")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[4]), "$1,000,000.00"))
	assert.Empty(t, lines[5])
	assert.Equal(t, "[ Add House ]", lines[6])
}

func TestRenderPlain_CustomTitleAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, "Nothing for sale", nil, usdFormatter(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Nothing for sale\n"))
	assert.Contains(t, out, "Asking Price")
	assert.Contains(t, out, "[ Add House ]")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderPlain_WriteError(t *testing.T) {
	err := RenderPlain(failingWriter{}, "", scenarioHouses(), usdFormatter(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	records := listing.Append(scenarioHouses(), listing.NewHouse())

	require.NoError(t, RenderJSON(&buf, records))

	var decoded []listing.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, records, decoded)
	assert.Contains(t, buf.String(), `"address": "32 Valley Way, New York"`)
}

func TestRenderJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderStyled(t *testing.T) {
	var buf bytes.Buffer
	m := newTestHouseList(t, listing.DefaultHouses())

	require.NoError(t, RenderStyled(&buf, m))

	out := buf.String()
	assert.Contains(t, out, "Grote Hof 12, Amsterdam")
	assert.Contains(t, out, "Add House")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name          string
		terminal      bool
		noColor       string
		forceColor    bool
		noInteractive bool
		plain         bool
		want          OutputMode
	}{
		{name: "terminal is interactive", terminal: true, want: OutputModeInteractive},
		{name: "terminal without interaction is styled", terminal: true, noInteractive: true, want: OutputModeStyled},
		{name: "pipe is plain", want: OutputModePlain},
		{name: "pipe with force color is styled", forceColor: true, want: OutputModeStyled},
		{name: "plain flag wins", terminal: true, plain: true, want: OutputModePlain},
		{name: "NO_COLOR wins", terminal: true, noColor: "1", want: OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := isTerminal
			t.Cleanup(func() { isTerminal = orig })
			isTerminal = func(*os.File) bool { return tt.terminal }
			t.Setenv("NO_COLOR", tt.noColor)

			got := DetectOutputMode(tt.forceColor, tt.noInteractive, tt.plain)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(42).String())
}
