package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flashdeck/internal/model"
)

// DeckExt is the file extension (case-sensitive) that marks a deck file.
const DeckExt = ".csv"

// Catalog is the ordered list of decks found in a directory, with a cursor
// on the active deck. Moving the cursor wraps around at both ends.
//
// The list is a snapshot taken by OpenCatalog; later changes to the directory
// are not picked up.
type Catalog struct {
	dir     string
	entries []model.DeckEntry
	active  int
}

// OpenCatalog scans dir for deck files and returns a catalog positioned on the
// first deck in lexicographic filename order.
func OpenCatalog(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("open deck directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read deck directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(ents))
	for _, e := range ents {
		name := e.Name()
		if !isDeckFilename(name) {
			continue
		}
		// Stat (not Lstat) so symlinked deck files count like regular ones.
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s (want *%s files)", ErrNoDecksFound, dir, DeckExt)
	}
	sort.Strings(names)

	entries := make([]model.DeckEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, model.DeckEntry{Filename: name, DisplayName: DisplayName(name)})
	}
	return &Catalog{dir: dir, entries: entries}, nil
}

// isDeckFilename reports whether name carries the deck extension. A bare
// ".csv" is a dotfile without an extension and does not count.
func isDeckFilename(name string) bool {
	return filepath.Ext(name) == DeckExt && strings.TrimSuffix(name, DeckExt) != ""
}

func (c *Catalog) Dir() string { return c.dir }

// Total returns the number of decks.
func (c *Catalog) Total() int { return len(c.entries) }

func (c *Catalog) HasMultiple() bool { return len(c.entries) > 1 }

// Index returns the 0-based position of the active deck.
func (c *Catalog) Index() int { return c.active }

// Entries returns a copy of the deck list.
func (c *Catalog) Entries() []model.DeckEntry {
	out := make([]model.DeckEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Current returns the active deck entry.
func (c *Catalog) Current() model.DeckEntry { return c.entries[c.active] }

// CurrentPath returns the file path of the active deck.
func (c *Catalog) CurrentPath() string { return c.PathOf(c.entries[c.active]) }

// PathOf returns the file path of a deck entry in this catalog's directory.
func (c *Catalog) PathOf(e model.DeckEntry) string { return filepath.Join(c.dir, e.Filename) }

// Next activates the following deck, wrapping to the first.
func (c *Catalog) Next() {
	c.active = (c.active + 1) % len(c.entries)
}

// Previous activates the preceding deck, wrapping to the last.
func (c *Catalog) Previous() {
	c.active = (c.active - 1 + len(c.entries)) % len(c.entries)
}

// Select activates the deck at index i. Out-of-range indexes are ignored and
// reported as false.
func (c *Catalog) Select(i int) bool {
	if i < 0 || i >= len(c.entries) {
		return false
	}
	c.active = i
	return true
}

// Find returns the index of the deck matching key by filename, display name or
// formatted title (in that order).
func (c *Catalog) Find(key string) (int, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, false
	}
	for i, e := range c.entries {
		if e.Filename == key {
			return i, true
		}
	}
	for i, e := range c.entries {
		if e.DisplayName == key {
			return i, true
		}
	}
	for i, e := range c.entries {
		if strings.EqualFold(FormatDisplayName(e.DisplayName), key) {
			return i, true
		}
	}
	return 0, false
}

func (c *Catalog) CurrentDisplayName() string { return c.entries[c.active].DisplayName }

func (c *Catalog) FormattedDisplayName() string {
	return FormatDisplayName(c.CurrentDisplayName())
}

// Counter returns the 1-based deck position, e.g. "Deck 2 / 5".
func (c *Catalog) Counter() string {
	return fmt.Sprintf("Deck %d / %d", c.active+1, len(c.entries))
}

// DisplayName strips the deck extension from a filename. Names without the
// exact extension suffix are returned unchanged.
func DisplayName(filename string) string {
	if name, ok := strings.CutSuffix(filename, DeckExt); ok {
		return name
	}
	return filename
}

// FormatDisplayName turns "basic_math" into "Basic Math": underscores become
// spaces, whitespace runs collapse, and each word gets an upper-case first
// letter with the rest left untouched.
func FormatDisplayName(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
