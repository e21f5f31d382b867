package tui

import (
	"strings"
	"sync"
)

// Some terminal fonts render arrows and box glyphs poorly; the ASCII set is a
// fallback for those.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphArrowLeft() string {
	if glyphs() == glyphSetASCII {
		return "<-"
	}
	return "←"
}

func glyphArrowRight() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}

func glyphArrowUp() string {
	if glyphs() == glyphSetASCII {
		return "^"
	}
	return "↑"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "..."
	}
	return "…"
}
