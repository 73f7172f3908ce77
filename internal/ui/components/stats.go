package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// StatsCard represents a statistics card component
type StatsCard struct {
	Title      string
	Value      int
	Icon       string
	Width      int
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
}

// NewStatsCard creates a new stats card
func NewStatsCard(title string, value int) *StatsCard {
	return &StatsCard{
		Title:      title,
		Value:      value,
		Width:      22,
		Background: lipgloss.NoColor{},
		Foreground: lipgloss.NoColor{},
		Muted:      lipgloss.NoColor{},
	}
}

// SetIcon sets the icon for the card
func (s *StatsCard) SetIcon(icon string) *StatsCard {
	s.Icon = icon
	return s
}

// SetWidth sets the outer width of the card
func (s *StatsCard) SetWidth(width int) *StatsCard {
	s.Width = width
	return s
}

// SetColors sets the card background and text colors
func (s *StatsCard) SetColors(background, foreground, muted lipgloss.TerminalColor) *StatsCard {
	s.Background = background
	s.Foreground = foreground
	s.Muted = muted
	return s
}

// Render renders the stats card
func (s *StatsCard) Render() string {
	valueStyle := lipgloss.NewStyle().
		Foreground(s.Foreground).
		Background(s.Background).
		Bold(true)
	titleStyle := lipgloss.NewStyle().
		Foreground(s.Muted).
		Background(s.Background)

	title := s.Title
	if s.Icon != "" {
		title = s.Icon + " " + title
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		valueStyle.Render(strconv.Itoa(s.Value)),
		titleStyle.Render(title),
	)

	return lipgloss.NewStyle().
		Background(s.Background).
		Padding(1, 2).
		Width(s.Width).
		Render(content)
}

// StatsRow lays out stats cards side by side, wrapping when they do not fit
type StatsRow struct {
	cards []*StatsCard
	gap   int
}

// NewStatsRow creates a row of cards separated by gap columns
func NewStatsRow(gap int) *StatsRow {
	return &StatsRow{gap: gap}
}

// AddCard adds a stats card to the row
func (r *StatsRow) AddCard(card *StatsCard) *StatsRow {
	r.cards = append(r.cards, card)
	return r
}

// Len returns the number of cards in the row
func (r *StatsRow) Len() int {
	return len(r.cards)
}

// Render renders the cards within width, stacking them vertically when the
// row would not fit
func (r *StatsRow) Render(width int) string {
	if len(r.cards) == 0 {
		return ""
	}

	needed := (len(r.cards) - 1) * r.gap
	for _, card := range r.cards {
		needed += card.Width
	}

	rendered := make([]string, 0, len(r.cards)*2)
	if width > 0 && needed > width {
		for _, card := range r.cards {
			rendered = append(rendered, card.Render())
		}
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}

	spacer := lipgloss.NewStyle().Width(r.gap).Render("")
	for i, card := range r.cards {
		if i > 0 {
			rendered = append(rendered, spacer)
		}
		rendered = append(rendered, card.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
