package cli

import "fmt"

type deckNotFoundError struct {
	key string
	dir string
}

func (e deckNotFoundError) Error() string {
	return fmt.Sprintf("deck not found: %s (run `flashdeck decks --dir %s` to list decks)", e.key, e.dir)
}

func errDeckNotFound(key, dir string) error {
	return deckNotFoundError{key: key, dir: dir}
}

type cardOutOfRangeError struct {
	card  int
	total int
}

func (e cardOutOfRangeError) Error() string {
	return fmt.Sprintf("card %d out of range (deck has %d cards)", e.card, e.total)
}
