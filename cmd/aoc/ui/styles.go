// Package ui renders solver answers for the aoc CLI.
// Colors follow a small light/dark palette; output written to anything that
// is not a terminal stays plain text.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#101F38") // Dark Blue
	LightAccent     = lipgloss.Color("#8BC34A") // Lime Green
	LightMuted      = lipgloss.Color("#6a737d")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkAccent     = lipgloss.Color("#8BC34A")
	DarkMuted      = lipgloss.Color("#8b96a8")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{Foreground: LightForeground, Accent: LightAccent, Muted: LightMuted}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{Foreground: DarkForeground, Accent: DarkAccent, Muted: DarkMuted, IsDark: true}
}

// DetectTheme picks dark mode from COLORFGBG or AOC_DARK_MODE=1, light otherwise.
func DetectTheme() Theme {
	// Format is usually "foreground;background"
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			// 0-6 and 8 (dark grey) are likely dark backgrounds
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	if os.Getenv("AOC_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components used by the CLI
type Styles struct {
	Theme Theme

	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles binds a theme to the renderer of one output stream.
func NewStyles(r *lipgloss.Renderer, theme Theme) Styles {
	return Styles{
		Theme: theme,
		Title: r.NewStyle().Foreground(theme.Foreground).Bold(true),
		Label: r.NewStyle().Foreground(theme.Muted),
		Value: r.NewStyle().Foreground(theme.Accent).Bold(true),
		Muted: r.NewStyle().Foreground(theme.Muted),
	}
}

// ForWriter returns styles for w using the detected theme.
func ForWriter(w io.Writer) Styles {
	return NewStyles(lipgloss.NewRenderer(w), DetectTheme())
}

// RenderAnswer writes one "<Label>: <value>" line per part, in part order.
func RenderAnswer(w io.Writer, a puzzle.Answer) {
	s := ForWriter(w)
	for _, p := range a.Parts {
		fmt.Fprintf(w, "%s %s\n", s.Label.Render(p.Label+":"), s.Value.Render(strconv.Itoa(p.Value)))
	}
}
