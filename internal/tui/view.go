package tui

import (
	"strings"

	"flashdeck/internal/docs"

	"github.com/charmbracelet/lipgloss"
)

// Before the first WindowSizeMsg the view assumes a classic terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (m appModel) View() string {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	if cardWidth(w) < minCardWidth {
		return styleMuted().Render("Window too small")
	}
	if m.showHelp {
		return m.viewHelp(w, h)
	}

	header := styleTitle().Render(m.catalog.FormattedDisplayName())
	if m.catalog.HasMultiple() {
		header += styleMuted().Render("  " + glyphBullet() + "  " + m.catalog.Counter())
	}

	parts := []string{
		center(header, w),
		"",
		center(m.viewCard(cardWidth(w), cardLines(h)), w),
		center(styleStatus().Render(m.session.Side()), w),
		center(styleMuted().Render(m.session.Counter()), w),
	}
	if m.flash != "" {
		parts = append(parts, center(styleFlash().Render(m.flash), w))
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, center(m.help.View(m.keys), w))

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}

// viewCard renders the current side inside a bordered card of outer width
// width. The border and horizontal padding take two cells each.
func (m appModel) viewCard(width, lines int) string {
	inner := width - 4
	body := layoutCardText(m.measurer, m.session.CurrentText(), inner, lines)
	return styleCard(m.session.IsFlipped()).Render(strings.Join(body, "\n"))
}

func (m appModel) viewHelp(w, h int) string {
	md, _ := docs.Get("keys")
	body := RenderMarkdown(md, min(w-4, maxCardWidth))
	footer := styleMuted().Render("esc: close help")
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, body+"\n\n"+footer)
}
