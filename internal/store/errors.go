package store

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryNotFound = errors.New("deck directory not found")
	ErrNotADirectory     = errors.New("deck path is not a directory")
	ErrNoDecksFound      = errors.New("no decks found")

	// ErrNoUsableCards means a deck was readable but produced zero valid cards.
	ErrNoUsableCards = errors.New("no usable cards")

	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// LoadError reports a failed deck load. It unwraps to the underlying I/O error
// or to ErrNoUsableCards.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load deck %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
