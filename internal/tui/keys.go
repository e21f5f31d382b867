package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Flip      key.Binding
	NextCard  key.Binding
	PrevCard  key.Binding
	NextDeck  key.Binding
	PrevDeck  key.Binding
	Help      key.Binding
	CloseHelp key.Binding
	Quit      key.Binding
}

// newKeyMap builds the bindings. Help labels use the active glyph set, so call
// it after applyGlyphPreference. Deck bindings are disabled (and drop out of
// the help line) when there is only one deck.
func newKeyMap(multipleDecks bool) keyMap {
	km := keyMap{
		Flip: key.NewBinding(
			key.WithKeys(" ", "space", "up", "k"),
			key.WithHelp("space/"+glyphArrowUp(), "flip"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp(glyphArrowRight(), "next"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp(glyphArrowLeft(), "prev"),
		),
		NextDeck: key.NewBinding(
			key.WithKeys("tab", "]", "n"),
			key.WithHelp("tab", "next deck"),
		),
		PrevDeck: key.NewBinding(
			key.WithKeys("shift+tab", "[", "p"),
			key.WithHelp("shift+tab", "prev deck"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CloseHelp: key.NewBinding(
			key.WithKeys("esc", "?"),
			key.WithHelp("esc", "close help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.NextDeck.SetEnabled(multipleDecks)
	km.PrevDeck.SetEnabled(multipleDecks)
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.PrevCard, k.NextCard, k.NextDeck, k.PrevDeck, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flip, k.PrevCard, k.NextCard},
		{k.NextDeck, k.PrevDeck},
		{k.Help, k.CloseHelp, k.Quit},
	}
}
