package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color palette for the TUI
type Theme struct {
	Name string

	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Warning    lipgloss.Color

	// Letter density bars
	Bar   lipgloss.Color
	Track lipgloss.Color

	// Stats card backgrounds
	CharactersCard lipgloss.Color
	WordsCard      lipgloss.Color
	SentencesCard  lipgloss.Color
}

// buildTheme creates a theme with the given colors
func buildTheme(name string, primary, foreground, muted, border, warning, bar, track, characters, words, sentences string) Theme {
	return Theme{
		Name:           name,
		Primary:        lipgloss.Color(primary),
		Foreground:     lipgloss.Color(foreground),
		Muted:          lipgloss.Color(muted),
		Border:         lipgloss.Color(border),
		Warning:        lipgloss.Color(warning),
		Bar:            lipgloss.Color(bar),
		Track:          lipgloss.Color(track),
		CharactersCard: lipgloss.Color(characters),
		WordsCard:      lipgloss.Color(words),
		SentencesCard:  lipgloss.Color(sentences),
	}
}

// Available themes
var (
	LightTheme = buildTheme("light",
		"#A855F7", "#111827", "#4B5563", "#D1D5DB", "#D97706",
		"#A855F7", "#E5E7EB",
		"#F3E8FF", "#FFEDD5", "#FEE2E2")

	DarkTheme = buildTheme("dark",
		"#C084FC", "#F9FAFB", "#D1D5DB", "#374151", "#FBBF24",
		"#A855F7", "#374151",
		"#3B0764", "#431407", "#450A0A")
)

// ThemeFor returns the dark or light theme
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// ResolveDarkMode maps a configured theme name to a dark mode flag, asking the
// terminal for its background when the name is "auto"
func ResolveDarkMode(name string) bool {
	switch name {
	case "dark":
		return true
	case "light":
		return false
	default:
		return lipgloss.HasDarkBackground()
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Styles contains the styled components of the live view
type Styles struct {
	Theme Theme
	Color bool

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style
	Toggle   lipgloss.Style
	Input    lipgloss.Style
}

// NewStyles builds the styles for theme; with color off every style is plain
func NewStyles(theme Theme, color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Theme:    theme,
			Title:    plain.Bold(true),
			Subtitle: plain.Bold(true),
			Header:   plain.Bold(true),
			Body:     plain,
			Muted:    plain,
			Warning:  plain,
			Toggle:   plain.Underline(true),
			Input:    plain.Border(lipgloss.NormalBorder()),
		}
	}

	return &Styles{
		Theme: theme,
		Color: true,

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true),

		Toggle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Underline(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}
