package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "booklist.log")

	log, closer, err := New(Options{Level: "debug", Path: path})
	require.NoError(t, err)

	log.Debug().Str("term", "dune").Msg("search started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(bytes.TrimSpace(data))
	assert.Equal(t, "debug", gjson.Get(line, "level").String())
	assert.Equal(t, "dune", gjson.Get(line, "term").String())
	assert.Equal(t, "search started", gjson.Get(line, "message").String())
	assert.True(t, gjson.Get(line, "time").Exists())
}

func TestNew_LevelFiltersFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booklist.log")

	log, closer, err := New(Options{Level: "warn", Path: path})
	require.NoError(t, err)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_ConsoleMirror(t *testing.T) {
	var console bytes.Buffer
	log, closer, err := New(Options{Console: &console})
	require.NoError(t, err)
	log.Info().Str("term", "x").Msg("hello")
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "hello")
	assert.Contains(t, console.String(), "term=")
}

func TestNew_NoOutputsIsNop(t *testing.T) {
	log, closer, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNew_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := New(Options{Path: filepath.Join(blocker, "sub", "booklist.log")})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
