package tui

import (
	"strings"

	"flashdeck/internal/textwrap"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	// cardFontSize makes one measurer unit equal one terminal cell
	// (textwrap.CharWidth(2) == 1).
	cardFontSize = 2

	maxCardWidth = 72
	minCardWidth = 20
	minCardLines = 3
	maxCardLines = 12

	// Lines used by everything around the card body: header, blank, card
	// border, side label, counter, flash and help.
	chromeLines = 9
)

// cardWidth is the outer card width for a terminal of the given width.
func cardWidth(termWidth int) int {
	return min(termWidth-4, maxCardWidth)
}

func cardLines(termHeight int) int {
	return max(minCardLines, min(termHeight-chromeLines, maxCardLines))
}

// layoutCardText wraps text into lines for a card body of width cells and
// height lines, centering each line horizontally and the block vertically.
// Wrapping and centering use the same measurer so both agree on line widths.
// Text that overflows the body is cut with an ellipsis on the last line.
func layoutCardText(m textwrap.Measurer, text string, width, height int) []string {
	lines := textwrap.WrapWith(m, text, width, cardFontSize)
	if len(lines) > height {
		lines = lines[:height]
		last := lines[height-1]
		lines[height-1] = xansi.Truncate(last, width-xansi.StringWidth(glyphEllipsis()), "") + glyphEllipsis()
	}

	out := make([]string, 0, height)
	top := (height - len(lines)) / 2
	for range top {
		out = append(out, "")
	}
	for _, ln := range lines {
		pad := textwrap.Center(m, ln, width, cardFontSize)
		out = append(out, strings.Repeat(" ", pad)+ln)
	}
	for len(out) < height {
		out = append(out, "")
	}
	return fitBlock(out, width)
}

// fitBlock pads or cuts every line to exactly width cells so a background
// color fills the whole card.
func fitBlock(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w > width {
			ln = xansi.Cut(ln, 0, width)
		} else if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		out[i] = ln
	}
	return out
}

// center places s in the middle of a line of the given width.
func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
