package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/TextSum/internal/report"
)

const barWidth = 20

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// densityBar draws a fixed-width bar for a percentage in [0, 100]
func densityBar(percentage float64, filled, empty string) string {
	n := int(percentage / 100 * barWidth)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat(filled, n) + strings.Repeat(empty, barWidth-n)
}

// charactersLabel names the total character figure according to the options
func charactersLabel(r *report.Report) string {
	if r.Options.ExcludeSpaces {
		return "Total Characters (no spaces)"
	}
	return "Total Characters"
}

// sourceName returns a printable name for the text source
func sourceName(r *report.Report) string {
	if r.Source == "" {
		return "stdin"
	}
	return r.Source
}
