package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/config"
)

func TestInitLogger_DisabledIsSilent(t *testing.T) {
	cfg := config.DefaultConfig().Log
	cfg.File = filepath.Join(t.TempDir(), "logs", "never.log")

	logger, closer, err := InitLogger(cfg, "s1")
	require.NoError(t, err)
	logger.Info().Msg("dropped")
	require.NoError(t, closer.Close())

	_, statErr := os.Stat(cfg.File)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInitLogger_WritesRotatedFile(t *testing.T) {
	cfg := config.DefaultConfig().Log
	cfg.Enabled = true
	cfg.File = filepath.Join(t.TempDir(), "logs", "game.log")

	logger, closer, err := InitLogger(cfg, "session-42")
	require.NoError(t, err)
	logger.Debug().Int("score", 3).Msg("game finished")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "session-42", entry["session"])
	assert.Equal(t, "game finished", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.InDelta(t, 3, entry["score"], 0)
}
