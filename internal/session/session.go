// Package session tracks the card being studied: the loaded deck, the current
// position in it and whether the card is showing its answer.
package session

import (
	"fmt"
	"slices"

	"flashdeck/internal/model"
	"flashdeck/internal/store"
)

// Session is the study state for one loaded deck. It always holds at least
// one card. It is not safe for concurrent use.
type Session struct {
	cards    []model.Card
	position int
	flipped  bool
}

// New starts a session on cards. An empty deck fails with
// store.ErrNoUsableCards.
func New(cards []model.Card) (*Session, error) {
	s := &Session{}
	if err := s.Reload(cards); err != nil {
		return nil, err
	}
	return s, nil
}

// Open loads the deck at path and starts a session on it.
func Open(path string) (*Session, error) {
	cards, err := store.LoadCards(path)
	if err != nil {
		return nil, err
	}
	return New(cards)
}

// Reload replaces the deck and rewinds to the first card, question side up.
// An empty deck is rejected and the session is left exactly as it was.
func (s *Session) Reload(cards []model.Card) error {
	if len(cards) == 0 {
		return store.ErrNoUsableCards
	}
	s.cards = slices.Clone(cards)
	s.position = 0
	s.flipped = false
	return nil
}

// LoadDeck loads the deck at path and reloads the session with it. On any
// failure the current deck stays active.
func (s *Session) LoadDeck(path string) error {
	cards, err := store.LoadCards(path)
	if err != nil {
		return err
	}
	return s.Reload(cards)
}

// Flip turns the current card over.
func (s *Session) Flip() { s.flipped = !s.flipped }

// Next moves to the following card. It stops at the last card. Either way the
// card ends up question side up.
func (s *Session) Next() {
	if s.position < len(s.cards)-1 {
		s.position++
	}
	s.flipped = false
}

// Previous moves to the preceding card. It stops at the first card. Either way
// the card ends up question side up.
func (s *Session) Previous() {
	if s.position > 0 {
		s.position--
	}
	s.flipped = false
}

// Current returns the card at the current position.
func (s *Session) Current() model.Card { return s.cards[s.position] }

// CurrentText returns the visible side of the current card.
func (s *Session) CurrentText() string {
	if len(s.cards) == 0 {
		return ""
	}
	return s.cards[s.position].Side(s.flipped)
}

func (s *Session) Position() int { return s.position }

func (s *Session) Total() int { return len(s.cards) }

func (s *Session) IsFlipped() bool { return s.flipped }

func (s *Session) AtFirst() bool { return s.position == 0 }

func (s *Session) AtLast() bool { return s.position == len(s.cards)-1 }

// Side names the visible side: "QUESTION" or "ANSWER".
func (s *Session) Side() string {
	if s.flipped {
		return "ANSWER"
	}
	return "QUESTION"
}

// Counter returns the 1-based card position, e.g. "Card 3 / 10".
func (s *Session) Counter() string {
	return fmt.Sprintf("Card %d / %d", s.position+1, len(s.cards))
}

// Cards returns a copy of the loaded deck.
func (s *Session) Cards() []model.Card { return slices.Clone(s.cards) }
