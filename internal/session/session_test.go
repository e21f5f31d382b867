package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"flashdeck/internal/model"
	"flashdeck/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeCards() []model.Card {
	return []model.Card{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
		{Question: "q3", Answer: "a3"},
	}
}

func TestNew_RejectsEmptyDeck(t *testing.T) {
	s, err := New(nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, store.ErrNoUsableCards)
}

func TestFlip(t *testing.T) {
	s, err := New(threeCards())
	require.NoError(t, err)

	assert.Equal(t, "q1", s.CurrentText())
	assert.Equal(t, "QUESTION", s.Side())
	s.Flip()
	assert.True(t, s.IsFlipped())
	assert.Equal(t, "a1", s.CurrentText())
	assert.Equal(t, "ANSWER", s.Side())
	assert.Equal(t, 0, s.Position())
	s.Flip()
	assert.False(t, s.IsFlipped())
	assert.Equal(t, "q1", s.CurrentText())
}

func TestNext_SaturatesAtLastCard(t *testing.T) {
	s, err := New(threeCards())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		s.Next()
	}
	assert.Equal(t, 2, s.Position())
	assert.True(t, s.AtLast())
	assert.Equal(t, "q3", s.CurrentText())
	assert.Equal(t, "Card 3 / 3", s.Counter())
}

func TestPrevious_SaturatesAtFirstCard(t *testing.T) {
	s, err := New(threeCards())
	require.NoError(t, err)

	s.Next()
	s.Previous()
	s.Previous()
	assert.Equal(t, 0, s.Position())
	assert.True(t, s.AtFirst())
	assert.Equal(t, "Card 1 / 3", s.Counter())
}

func TestNavigation_AlwaysShowsQuestion(t *testing.T) {
	s, err := New(threeCards())
	require.NoError(t, err)

	s.Flip()
	s.Next()
	assert.Equal(t, 1, s.Position())
	assert.False(t, s.IsFlipped())

	s.Flip()
	s.Previous()
	assert.Equal(t, 0, s.Position())
	assert.False(t, s.IsFlipped())

	// Boundary calls move nothing but still turn the card question side up.
	s.Flip()
	s.Previous()
	assert.Equal(t, 0, s.Position())
	assert.False(t, s.IsFlipped())

	s.Next()
	s.Next()
	s.Flip()
	s.Next()
	assert.Equal(t, 2, s.Position())
	assert.False(t, s.IsFlipped())
}

func TestReload_ResetsPositionAndFlip(t *testing.T) {
	s, err := New(threeCards())
	require.NoError(t, err)
	s.Next()
	s.Flip()

	require.NoError(t, s.Reload([]model.Card{{Question: "x", Answer: "y"}}))
	assert.Equal(t, 0, s.Position())
	assert.False(t, s.IsFlipped())
	assert.Equal(t, 1, s.Total())
	assert.Equal(t, "x", s.CurrentText())
}

func TestReload_EmptyLeavesSessionUnchanged(t *testing.T) {
	s, err := New(threeCards())
	require.NoError(t, err)
	s.Next()
	s.Flip()

	err = s.Reload([]model.Card{})
	assert.ErrorIs(t, err, store.ErrNoUsableCards)
	assert.Equal(t, 1, s.Position())
	assert.True(t, s.IsFlipped())
	assert.Equal(t, threeCards(), s.Cards())
	assert.Equal(t, "a2", s.CurrentText())
}

func TestReload_DoesNotAliasCallerSlice(t *testing.T) {
	cards := threeCards()
	s, err := New(cards)
	require.NoError(t, err)

	cards[0].Question = "changed"
	assert.Equal(t, "q1", s.CurrentText())
}

func TestLoadDeck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.csv")
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(good, []byte("q1,a1\nq2,a2\n"), 0o644))
	require.NoError(t, os.WriteFile(empty, []byte("nothing here\n"), 0o644))

	s, err := Open(good)
	require.NoError(t, err)
	s.Next()
	s.Flip()

	err = s.LoadDeck(empty)
	assert.ErrorIs(t, err, store.ErrNoUsableCards)
	assert.Equal(t, 1, s.Position())
	assert.True(t, s.IsFlipped())

	err = s.LoadDeck(filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "a2", s.CurrentText())

	require.NoError(t, s.LoadDeck(good))
	assert.Equal(t, 0, s.Position())
	assert.False(t, s.IsFlipped())
}
