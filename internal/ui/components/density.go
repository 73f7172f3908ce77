package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/TextSum/internal/report"
)

// DensityList renders letter density rows as labelled bars
type DensityList struct {
	Rows     []report.LetterShare
	BarWidth int

	BarColor   lipgloss.TerminalColor
	TrackColor lipgloss.TerminalColor
	LabelColor lipgloss.TerminalColor
}

// NewDensityList creates a density list for rows
func NewDensityList(rows []report.LetterShare, barWidth int) *DensityList {
	return &DensityList{
		Rows:       rows,
		BarWidth:   barWidth,
		BarColor:   lipgloss.NoColor{},
		TrackColor: lipgloss.NoColor{},
		LabelColor: lipgloss.NoColor{},
	}
}

// Render renders one line per letter: the letter, a bar and "count (pp.pp%)"
func (d *DensityList) Render() string {
	barStyle := lipgloss.NewStyle().Foreground(d.BarColor)
	trackStyle := lipgloss.NewStyle().Foreground(d.TrackColor)
	labelStyle := lipgloss.NewStyle().Foreground(d.LabelColor)

	lines := make([]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		filled := Filled(row.Percentage, d.BarWidth)

		line := fmt.Sprintf("%s  %s%s  %s",
			labelStyle.Render(strings.ToUpper(row.Letter)),
			barStyle.Render(strings.Repeat("█", filled)),
			trackStyle.Render(strings.Repeat("░", d.BarWidth-filled)),
			labelStyle.Render(fmt.Sprintf("%d (%.2f%%)", row.Count, row.Percentage)),
		)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Filled returns how many of width cells a percentage fills
func Filled(percentage float64, width int) int {
	if width <= 0 {
		return 0
	}
	n := int(percentage / 100 * float64(width))
	if n < 0 {
		return 0
	}
	if n > width {
		return width
	}
	return n
}
