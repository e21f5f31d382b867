package tui

import (
	"strings"
	"testing"

	"flashdeck/internal/textwrap"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestLayoutCardText_CentersAndFills(t *testing.T) {
	lines := layoutCardText(textwrap.Cells, "What is the capital of France", 20, 5)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines; got %d", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 20 {
			t.Fatalf("line %d: expected width 20; got %d (%q)", i, w, ln)
		}
	}
	// "What is the capital" (19) and "of France" (9): one blank line above.
	if strings.TrimSpace(lines[0]) != "" {
		t.Fatalf("expected vertical padding; got %q", lines[0])
	}
	if got := lines[1]; got != "What is the capital " {
		t.Fatalf("unexpected first text line %q", got)
	}
	if got := lines[2]; !strings.HasPrefix(got, "     of France") {
		t.Fatalf("expected centered second line; got %q", got)
	}
}

func TestLayoutCardText_TruncatesOverflow(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	lines := layoutCardText(textwrap.Cells, "one two three four five six", 5, 2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines; got %d", len(lines))
	}
	if !strings.HasSuffix(strings.TrimRight(lines[1], " "), "...") {
		t.Fatalf("expected ellipsis on last line; got %q", lines[1])
	}
}

func TestCardDimensions(t *testing.T) {
	if got := cardWidth(200); got != maxCardWidth {
		t.Fatalf("expected width capped at %d; got %d", maxCardWidth, got)
	}
	if got := cardWidth(40); got != 36 {
		t.Fatalf("expected 36; got %d", got)
	}
	if got := cardLines(5); got != minCardLines {
		t.Fatalf("expected min lines; got %d", got)
	}
	if got := cardLines(100); got != maxCardLines {
		t.Fatalf("expected max lines; got %d", got)
	}
}
