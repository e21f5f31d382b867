package model

// Card is one question/answer pair loaded from a deck file.
//
// Cards are values: a loaded collection owns its cards and nothing else keeps
// references into it.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Side returns the text for the requested side of the card.
func (c Card) Side(flipped bool) string {
	if flipped {
		return c.Answer
	}
	return c.Question
}

// DeckEntry is one deck discovered in the deck directory.
type DeckEntry struct {
	Filename    string `json:"filename"`
	DisplayName string `json:"name"`
}
