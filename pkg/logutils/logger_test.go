package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "innview.log")

	logger, closer, err := New("info", file)
	require.NoError(t, err)

	logger.Info().Str("owner", "hotel:a").Msg("hello")
	logger.Debug().Msg("filtered")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"owner":"hotel:a"`)
	assert.NotContains(t, string(data), "filtered")
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	file := filepath.Join(t.TempDir(), "innview.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "")
	require.Error(t, err)
}

func TestNew_EmptyFileDiscards(t *testing.T) {
	logger, closer, err := New("warn", "")
	require.NoError(t, err)
	defer closer()
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
