package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"flashdeck/internal/applog"
	"flashdeck/internal/session"
	"flashdeck/internal/store"
	"flashdeck/internal/textwrap"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const flashTimeout = 4 * time.Second

type flashClearMsg struct{ seq int }

type appModel struct {
	catalog  *store.Catalog
	session  *session.Session
	measurer textwrap.Measurer
	log      *applog.Logger

	width  int
	height int

	keys     keyMap
	help     help.Model
	showHelp bool

	flash    string
	flashSeq int
}

func newAppModel(opts Options) appModel {
	m := appModel{
		catalog:  opts.Catalog,
		session:  opts.Session,
		measurer: opts.Measurer,
		log:      opts.Logger,
		keys:     newKeyMap(opts.Catalog.HasMultiple()),
		help:     help.New(),
	}
	if m.measurer == nil {
		m.measurer = textwrap.Cells
	}
	if m.log == nil {
		m.log = applog.Discard()
	}
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case flashClearMsg:
		// Only the latest flash clears itself.
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch {
			case key.Matches(msg, m.keys.CloseHelp):
				m.showHelp = false
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Flip):
			m.session.Flip()
		case key.Matches(msg, m.keys.NextCard):
			m.session.Next()
		case key.Matches(msg, m.keys.PrevCard):
			m.session.Previous()
		case key.Matches(msg, m.keys.NextDeck):
			return m, m.switchDeck(true)
		case key.Matches(msg, m.keys.PrevDeck):
			return m, m.switchDeck(false)
		}
	}
	return m, nil
}

// switchDeck moves the catalog cursor and loads the newly active deck. When
// the deck cannot be loaded the cursor moves back, the session keeps its
// previous cards and the failure is flashed in the status area.
func (m *appModel) switchDeck(forward bool) tea.Cmd {
	if !m.catalog.HasMultiple() {
		return nil
	}
	move, undo := m.catalog.Next, m.catalog.Previous
	if !forward {
		move, undo = undo, move
	}

	move()
	path := m.catalog.CurrentPath()
	if err := m.session.LoadDeck(path); err != nil {
		undo()
		m.log.Warn("deck switch refused", "path", path, "err", err)
		return m.setFlash(fmt.Sprintf("Cannot open %s: %s", filepath.Base(path), loadFailureReason(err)))
	}
	m.log.Info("deck loaded", "path", path, "cards", m.session.Total())
	m.flash = ""
	return nil
}

func (m *appModel) setFlash(s string) tea.Cmd {
	m.flashSeq++
	m.flash = s
	seq := m.flashSeq
	return tea.Tick(flashTimeout, func(time.Time) tea.Msg { return flashClearMsg{seq: seq} })
}

func loadFailureReason(err error) string {
	switch {
	case errors.Is(err, store.ErrNoUsableCards):
		return "no usable cards"
	case errors.Is(err, store.ErrInvalidUTF8):
		return "not valid UTF-8"
	case errors.Is(err, fs.ErrNotExist):
		return "file not found"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return err.Error()
	}
}
