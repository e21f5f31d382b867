package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// Colors are adaptive so the card stays readable on light and dark terminal
// backgrounds. Faint styling is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorQuestionBg lipgloss.TerminalColor = ac("#ECF0F1", "#ECF0F1")
	colorQuestionFg lipgloss.TerminalColor = ac("#2C3E50", "#2C3E50")
	colorAnswerBg   lipgloss.TerminalColor = ac("#3498DB", "#3498DB")
	colorAnswerFg   lipgloss.TerminalColor = ac("#FFFFFF", "#FFFFFF")
	colorCardBorder lipgloss.TerminalColor = ac("#34495E", "#95A5A6")

	colorTitle      lipgloss.TerminalColor = ac("#2C3E50", "#ECF0F1")
	colorStatus     lipgloss.TerminalColor = ac("#7F8C8D", "#95A5A6")
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorFlashError lipgloss.TerminalColor = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
}

func styleStatus() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorStatus).Bold(true)
}

func styleFlash() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorFlashError).Bold(true)
}

// styleCard is the card surface: light for the question, accent for the answer.
func styleCard(flipped bool) lipgloss.Style {
	bg, fg := colorQuestionBg, colorQuestionFg
	if flipped {
		bg, fg = colorAnswerBg, colorAnswerFg
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Background(bg).
		Foreground(fg).
		Padding(0, 1)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile also honors CLICOLOR, which can disable colors in a
// TUI by accident, so only NO_COLOR is respected and the rest follows the
// terminal's reported capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector reports.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) theme "light" or "dark"
// 2) COLORFGBG heuristic ("fg;bg", last segment is the background)
// 3) Lip Gloss's own detection
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			// xterm palette: 0-6 dark, 7-15 light.
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
