package textwrap

import (
	"unicode/utf8"

	xansi "github.com/charmbracelet/x/ansi"
)

// Measurer estimates the rendered width of text at a font size.
type Measurer interface {
	Measure(text string, fontSize int) int
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(text string, fontSize int) int

func (f MeasureFunc) Measure(text string, fontSize int) int { return f(text, fontSize) }

// Heuristic assumes every character is fontSize/2 pixels wide.
var Heuristic Measurer = MeasureFunc(func(text string, fontSize int) int {
	return utf8.RuneCountInString(text) * CharWidth(fontSize)
})

// Cells measures terminal display columns (wide glyphs count twice, escape
// sequences count zero) and scales them by the same per-character width as
// Heuristic. At font size 2 one unit is one terminal cell.
var Cells Measurer = MeasureFunc(func(text string, fontSize int) int {
	return xansi.StringWidth(text) * CharWidth(fontSize)
})

// CharWidth is the nominal width of one character at fontSize.
func CharWidth(fontSize int) int { return fontSize / 2 }
