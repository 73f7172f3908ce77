package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/TextSum/internal/report"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(r *report.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Text Analysis Report\n\n")
	fmt.Fprintf(&b, "Source: `%s`  \n", sourceName(r))
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))

	f.writeSummaryTable(&b, r)
	f.writeDensitySection(&b, r)

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, r *report.Report) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| %s | %s |\n", charactersLabel(r), formatNumber(r.TotalCharacters))
	fmt.Fprintf(b, "| Word Count | %s |\n", formatNumber(r.Analysis.WordCount))
	fmt.Fprintf(b, "| Sentence Count | %s |\n", formatNumber(r.Analysis.SentenceCount))
	fmt.Fprintf(b, "| Reading Time | %s |\n\n", r.ReadingTimeLabel())
}

// writeDensitySection writes the letter density table with a bar column
func (f *markdownFormatter) writeDensitySection(b *strings.Builder, r *report.Report) {
	b.WriteString("## Letter Density\n\n")

	if len(r.Density) == 0 {
		b.WriteString("_No letters found._\n")
		return
	}

	b.WriteString("| Letter | Count | Share | |\n")
	b.WriteString("|--------|------:|------:|---|\n")
	for _, share := range r.Density {
		fmt.Fprintf(b, "| %s | %d | %.2f%% | `%s` |\n",
			strings.ToUpper(share.Letter), share.Count, share.Percentage,
			densityBar(share.Percentage, "█", "░"))
	}

	if r.HiddenLetters > 0 {
		fmt.Fprintf(b, "\n_%d more letters not shown._\n", r.HiddenLetters)
	}
}
