package applog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flashdeck.log")
	l, err := New(Options{Path: path, Level: "debug", Format: "json"})
	require.NoError(t, err)

	l.Debug("deck.loaded", "cards", 3)
	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "deck.loaded", entry["msg"])
	assert.Equal(t, float64(3), entry["cards"])
	assert.NotEmpty(t, entry["run"])
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashdeck.log")
	l, err := New(Options{Path: path, Level: "warn"})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "shown")
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	l, err := New(Options{})
	require.NoError(t, err)
	l.Info("nowhere")
	assert.NoError(t, l.Close())
	assert.NoError(t, Discard().Close())
}
