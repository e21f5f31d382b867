package textwrap

import "strings"

// Wrap lays text out in lines no wider than maxWidth using the Heuristic
// measurer. See WrapWith.
func Wrap(text string, maxWidth, fontSize int) []string {
	return WrapWith(Heuristic, text, maxWidth, fontSize)
}

// WrapWith greedily packs whitespace-separated words into lines whose measured
// width stays within maxWidth. Runs of whitespace collapse to a single space.
// A word that is wider than maxWidth on its own gets a line to itself and is
// never split. Text without words yields no lines.
func WrapWith(m Measurer, text string, maxWidth, fontSize int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 4)
	current := ""
	for _, w := range words {
		candidate := w
		if current != "" {
			candidate = current + " " + w
		}
		if m.Measure(candidate, fontSize) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = w
		} else {
			lines = append(lines, w)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// Center returns the left offset that centers line within width, never
// negative.
func Center(m Measurer, line string, width, fontSize int) int {
	off := (width - m.Measure(line, fontSize)) / 2
	if off < 0 {
		return 0
	}
	return off
}
