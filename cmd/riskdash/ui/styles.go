// Package ui provides the visual styling for the riskdash terminal
// dashboard and the result-card rendering.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"riskdash/internal/prediction"
)

// Color palette. The risk colors and the dark palette follow the
// original dashboard styling.
var (
	// Dark mode (default, matches the dashboard's native look)
	DarkBackground = lipgloss.Color("#121212")
	DarkSurface    = lipgloss.Color("#1e1e1e")
	DarkForeground = lipgloss.Color("#e0e0e0")
	DarkMuted      = lipgloss.Color("#8a8a8a")
	DarkBorder     = lipgloss.Color("#333333")

	// Light mode
	LightBackground = lipgloss.Color("#f4f5f6")
	LightSurface    = lipgloss.Color("#ffffff")
	LightForeground = lipgloss.Color("#1e1e1e")
	LightMuted      = lipgloss.Color("#6a6a6a")
	LightBorder     = lipgloss.Color("#d6dae0")

	// Semantic colors (same in both modes)
	Accent      = lipgloss.Color("#1abc9c") // Teal, high-impact buttons/results
	Destructive = lipgloss.Color("#e74c3c")
	Warning     = lipgloss.Color("#f1c40f")
	Success     = lipgloss.Color("#27ae60")

	// Risk segment colors
	LowRisk    = lipgloss.Color("#27ae60") // Green
	MediumRisk = lipgloss.Color("#f1c40f") // Yellow
	HighRisk   = lipgloss.Color("#e74c3c") // Red
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Surface:    DarkSurface,
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Surface:    LightSurface,
		Foreground: LightForeground,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// ResolveTheme maps a configured theme name to a Theme. "auto" (or
// anything unrecognized) falls back to terminal detection.
func ResolveTheme(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme inspects COLORFGBG to guess the terminal background.
// Defaults to dark, which is what the dashboard was designed for.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		// Format is "foreground;background"; ANSI backgrounds 7 and
		// 15 are light.
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if bgIdx == 7 || bgIdx == 15 {
					return LightTheme()
				}
			}
		}
	}
	return DarkTheme()
}

// RiskColor returns the color role for a risk segment. Unknown segments
// get the neutral border color, the card equivalent of no verdict.
func RiskColor(seg prediction.Segment, theme Theme) lipgloss.Color {
	switch seg {
	case prediction.SegmentLow:
		return LowRisk
	case prediction.SegmentMedium:
		return MediumRisk
	case prediction.SegmentHigh:
		return HighRisk
	default:
		return theme.Border
	}
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Content lipgloss.Style
	Divider lipgloss.Style

	// Text
	Title   lipgloss.Style
	Caption lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style

	// Form
	GroupTitle   lipgloss.Style
	GroupBox     lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldValue   lipgloss.Style
	FieldFocused lipgloss.Style
	OptionArrow  lipgloss.Style

	// Actions
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Spinner lipgloss.Style

	// Result card
	CardLabel   lipgloss.Style
	CardSegment lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Title: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		Caption: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		GroupTitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Underline(true),

		GroupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(theme.Muted),

		FieldValue: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		FieldFocused: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		OptionArrow: lipgloss.NewStyle().
			Foreground(Accent),

		Button: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Surface).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(Accent).
			Padding(0, 2).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Spinner: lipgloss.NewStyle().
			Foreground(Accent),

		CardLabel: lipgloss.NewStyle().
			Bold(true),

		CardSegment: lipgloss.NewStyle().
			Foreground(theme.Foreground),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
