package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/TextSum/internal/emoji"
	"github.com/yildizm/TextSum/internal/report"
	"github.com/yildizm/go-termfmt"
)

// unknownSymbol is what both emoji tables return for a key they do not know
const unknownSymbol = "[?]"

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(r *report.Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, r)
	f.writeStatistics(&b, r)
	f.writeDensity(&b, r)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder, r *report.Report) {
	header := "Text Analysis: " + sourceName(r)
	width := len([]rune(header))

	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}

// writeStatistics writes the counts as a go-termfmt tree
func (f *terminalFormatter) writeStatistics(b *strings.Builder, r *report.Report) {
	b.WriteString(f.symbol("statistics") + " Statistics\n")

	items := []termfmt.TreeItem{
		{Label: charactersLabel(r), Value: formatNumber(r.TotalCharacters)},
		{Label: "Word Count", Value: formatNumber(r.Analysis.WordCount)},
		{Label: "Sentence Count", Value: formatNumber(r.Analysis.SentenceCount)},
		{Label: "Reading Time", Value: r.ReadingTimeLabel(), Last: true},
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeDensity writes the letter density list, highest count first
func (f *terminalFormatter) writeDensity(b *strings.Builder, r *report.Report) {
	b.WriteString(f.symbol("letters") + " Letter Density\n")

	if len(r.Density) == 0 {
		b.WriteString("No letters found.\n")
		return
	}

	filled, empty := "█", "░"
	if emoji.IsEmojiDisabled() {
		filled, empty = "#", "-"
	}

	for i, share := range r.Density {
		branch := "├─"
		if i == len(r.Density)-1 && r.HiddenLetters == 0 {
			branch = "└─"
		}
		fmt.Fprintf(b, "%s %s %s %d (%.2f%%)\n",
			branch, strings.ToUpper(share.Letter), densityBar(share.Percentage, filled, empty),
			share.Count, share.Percentage)
	}

	if r.HiddenLetters > 0 {
		fmt.Fprintf(b, "└─ ... %d more (use --all to show every letter)\n", r.HiddenLetters)
	}
}

// symbol returns the local emoji for key, falling back to go-termfmt's table
func (f *terminalFormatter) symbol(key string) string {
	if s := emoji.GetEmoji(key); s != unknownSymbol || f.opts == nil {
		return s
	}
	return termfmt.GetEmoji(key, f.opts)
}
