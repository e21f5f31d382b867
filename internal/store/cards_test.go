package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flashdeck/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCards_DropsInvalidLines(t *testing.T) {
	path := writeDeck(t, t.TempDir(), "deck.csv", "q1,a1\n\nq2,\nbad\n")

	cards, err := LoadCards(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Card{{Question: "q1", Answer: "a1"}}, cards)
}

func TestLoadCards_PreservesFileOrder(t *testing.T) {
	body := strings.Join([]string{
		`"What is 2+2?",4`,
		`,missing question`,
		`"Capital of France, in one word",Paris`,
		`Quote,"He said ""go"""`,
	}, "\r\n")
	path := writeDeck(t, t.TempDir(), "deck.csv", body)

	cards, err := LoadCards(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Card{
		{Question: "What is 2+2?", Answer: "4"},
		{Question: "Capital of France, in one word", Answer: "Paris"},
		{Question: "Quote", Answer: `He said "go"`},
	}, cards)
}

func TestLoadCards_StripsByteOrderMark(t *testing.T) {
	path := writeDeck(t, t.TempDir(), "deck.csv", "\ufeffq,a\n")

	cards, err := LoadCards(path)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "q", cards[0].Question)
}

func TestLoadCards_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	cards, err := LoadCards(path)
	require.Error(t, err)
	assert.Nil(t, cards)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "want not-exist, got %v", err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
}

func TestLoadCards_NoUsableCards(t *testing.T) {
	for name, body := range map[string]string{
		"empty file":    "",
		"blank lines":   "\n\n  \n",
		"only invalid":  "one\nq,\n,a\n",
		"only comments": "just text without separators\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeDeck(t, t.TempDir(), "deck.csv", body)
			cards, err := LoadCards(path)
			assert.ErrorIs(t, err, ErrNoUsableCards)
			assert.Nil(t, cards)
		})
	}
}

func TestReadCards_InvalidUTF8(t *testing.T) {
	_, err := ReadCards(strings.NewReader("q,a\nbad\xff,x\n"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "line 2")
}
