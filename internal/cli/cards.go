package cli

import (
	"flashdeck/internal/store"

	"github.com/spf13/cobra"
)

func newCardsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cards <deck>",
		Short: "Print the usable cards of a deck",
		Long: `Print the usable cards of a deck.

<deck> is a filename, display name, title or 1-based index from ` + "`flashdeck decks`" + `,
or a path to a deck file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := resolveDeck(app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			cards, err := store.LoadCards(deck.Path)
			if err != nil {
				app.logger().Warn("load deck", "path", deck.Path, "err", err)
				return writeErr(cmd, err)
			}
			app.logger().Debug("deck loaded", "path", deck.Path, "cards", len(cards))

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"deck":  deck,
				"count": len(cards),
				"cards": cards,
			}})
		},
	}
}
