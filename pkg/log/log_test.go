package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", FormatJSON)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "chatty", FormatJSON)

	l.Debug().Msg("debug")
	l.Info().Msg("info")

	assert.NotContains(t, buf.String(), `"debug"`)
	assert.Contains(t, buf.String(), `"info"`)
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", FormatJSON).Component("github")
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"github"`)
}
