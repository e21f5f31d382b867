package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"flashdeck/internal/model"
)

const (
	byteOrderMark = "\ufeff"
	maxLineBytes  = 1 << 20
)

// LoadCards reads a deck file and returns its cards in file order.
//
// Lines that do not parse into two fields, or whose question or answer is
// empty, are skipped. A deck that yields no cards fails with ErrNoUsableCards.
// All failures are returned as *LoadError.
func LoadCards(path string) ([]model.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	cards, err := ReadCards(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return cards, nil
}

// ReadCards is LoadCards for an already opened reader.
func ReadCards(r io.Reader) ([]model.Card, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var cards []model.Card
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidUTF8)
		}
		rec, ok := ParseRecord(line)
		if !ok || rec.Question == "" || rec.Answer == "" {
			continue
		}
		cards = append(cards, model.Card{Question: rec.Question, Answer: rec.Answer})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	if len(cards) == 0 {
		return nil, ErrNoUsableCards
	}
	return cards, nil
}
