package tui

import (
	"flashdeck/internal/applog"
	"flashdeck/internal/session"
	"flashdeck/internal/store"
	"flashdeck/internal/textwrap"

	tea "github.com/charmbracelet/bubbletea"
)

// Options wires the TUI to an opened catalog and a session already loaded
// with the catalog's active deck.
type Options struct {
	Catalog  *store.Catalog
	Session  *session.Session
	Measurer textwrap.Measurer
	Logger   *applog.Logger

	// Theme is "auto", "light" or "dark"; Glyphs is "unicode" or "ascii".
	Theme  string
	Glyphs string
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
