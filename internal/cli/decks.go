package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"flashdeck/internal/model"
	"flashdeck/internal/store"

	"github.com/spf13/cobra"
)

type deckInfo struct {
	Index    int    `json:"index,omitempty"`
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Path     string `json:"path"`
}

func newDeckInfo(index int, e model.DeckEntry, path string) deckInfo {
	return deckInfo{
		Index:    index,
		Filename: e.Filename,
		Name:     e.DisplayName,
		Title:    store.FormatDisplayName(e.DisplayName),
		Path:     path,
	}
}

func newDecksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List the decks in the deck directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := store.OpenCatalog(app.cfg.DecksDir)
			if err != nil {
				return writeErr(cmd, err)
			}
			app.logger().Debug("catalog opened", "dir", cat.Dir(), "decks", cat.Total())

			entries := cat.Entries()
			out := make([]deckInfo, 0, len(entries))
			for i, e := range entries {
				out = append(out, newDeckInfo(i+1, e, cat.PathOf(e)))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"dir": cat.Dir(), "decks": out}})
		},
	}
}

// resolveDeck finds a deck by catalog filename, display name, title or
// 1-based index. Arguments that name an existing file are used as a direct
// path, so a deck outside the deck directory can be read too.
func resolveDeck(app *App, key string) (deckInfo, error) {
	key = strings.TrimSpace(key)

	cat, catErr := store.OpenCatalog(app.cfg.DecksDir)
	if catErr == nil {
		if i, ok := cat.Find(key); ok {
			e := cat.Entries()[i]
			return newDeckInfo(i+1, e, cat.PathOf(e)), nil
		}
		if n, err := strconv.Atoi(key); err == nil && cat.Select(n-1) {
			return newDeckInfo(n, cat.Current(), cat.CurrentPath()), nil
		}
	}

	if fi, err := os.Stat(key); err == nil && fi.Mode().IsRegular() {
		name := filepath.Base(key)
		e := model.DeckEntry{Filename: name, DisplayName: store.DisplayName(name)}
		return newDeckInfo(0, e, key), nil
	}

	// With no usable catalog the directory problem is the better diagnostic.
	if catErr != nil && !errors.Is(catErr, store.ErrNoDecksFound) {
		return deckInfo{}, catErr
	}
	return deckInfo{}, errDeckNotFound(key, app.cfg.DecksDir)
}
