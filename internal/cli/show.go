package cli

import (
	"errors"
	"fmt"
	"strings"

	"flashdeck/internal/session"
	"flashdeck/internal/textwrap"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var (
		card     int
		answer   bool
		width    int
		fontSize int
		centered bool
	)

	cmd := &cobra.Command{
		Use:   "show <deck>",
		Short: "Print one side of a card, wrapped as on the card surface",
		Long: `Print one side of a card, wrapped as on the card surface.

Width and font size use the same units as the card layout: each character
measures font-size/2, so the defaults (550, 40) give lines of at most 27
characters. Output is plain text, one wrapped line per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 {
				return writeErr(cmd, errors.New("--width must be positive"))
			}
			if fontSize <= 0 {
				return writeErr(cmd, errors.New("--font-size must be positive"))
			}

			deck, err := resolveDeck(app, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := session.Open(deck.Path)
			if err != nil {
				return writeErr(cmd, err)
			}
			if card < 1 || card > s.Total() {
				return writeErr(cmd, cardOutOfRangeError{card: card, total: s.Total()})
			}
			for s.Position() < card-1 {
				s.Next()
			}
			if answer {
				s.Flip()
			}

			m := app.measurer()
			var b strings.Builder
			for _, ln := range textwrap.WrapWith(m, s.CurrentText(), width, fontSize) {
				if centered {
					if cw := textwrap.CharWidth(fontSize); cw > 0 {
						b.WriteString(strings.Repeat(" ", textwrap.Center(m, ln, width, fontSize)/cw))
					}
				}
				b.WriteString(ln)
				b.WriteByte('\n')
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().IntVar(&card, "card", 1, "1-based card number")
	cmd.Flags().BoolVar(&answer, "answer", false, "Show the answer instead of the question")
	cmd.Flags().IntVar(&width, "width", 550, "Maximum line width")
	cmd.Flags().IntVar(&fontSize, "font-size", 40, "Font size")
	cmd.Flags().BoolVar(&centered, "center", false, "Indent each line to center it within --width")

	return cmd
}
