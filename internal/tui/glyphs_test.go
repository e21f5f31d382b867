package tui

import "testing"

func TestGlyphPreference(t *testing.T) {
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	setGlyphs(glyphSetUnicode)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	applyGlyphPreference("ASCII")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}
	if got := glyphArrowRight(); got != "->" {
		t.Fatalf("expected ascii arrow; got %q", got)
	}

	// Unknown values should be ignored (keep current).
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}

	applyGlyphPreference("unicode")
	if got := glyphArrowLeft(); got != "←" {
		t.Fatalf("expected unicode arrow; got %q", got)
	}
}
