package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/TextSum/internal/analyzer"
	"github.com/yildizm/TextSum/internal/emoji"
	"github.com/yildizm/TextSum/internal/report"
)

func buildReport(text string, opts report.Options) *report.Report {
	return report.Build(text, analyzer.Analyze(text), opts).WithSource("sample.txt")
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"terminal", false},
		{"", false},
		{"json", false},
		{"markdown", false},
		{"md", false},
		{"csv", false},
		{"prompt", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := New(tt.format, false)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && f == nil {
				t.Errorf("New(%q) returned nil formatter", tt.format)
			}
		})
	}
}

func TestTerminalFormatter_Density(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	defer emoji.SetEmojiDisabled(false)

	r := buildReport("Mississippi river", report.DefaultOptions())
	out, err := NewTerminal(false).Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	output := string(out)

	for _, want := range []string{"Text Analysis: sample.txt", "Word Count", "Letter Density", "I ", "S "} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	// i (5) ranks above s (4); the statistics tree also has "├─ Sentence Count"
	density := output[strings.Index(output, "Letter Density"):]
	iRow, sRow := strings.Index(density, "├─ I #"), strings.Index(density, "├─ S #")
	if iRow < 0 || sRow < 0 || iRow > sRow {
		t.Errorf("I should appear before S:\n%s", density)
	}

	// m, p, r, s, i, v, e: 7 distinct letters, 5 shown
	if !strings.Contains(output, "└─ ... 2 more") {
		t.Errorf("expected hidden letter line:\n%s", output)
	}
}

func TestTerminalFormatter_SectionSymbols(t *testing.T) {
	defer emoji.SetEmojiDisabled(emoji.IsEmojiDisabled())

	tests := []struct {
		name     string
		disabled bool
		want     []string
	}{
		{name: "ascii", disabled: true, want: []string{"[STATS] Statistics", "[ABC] Letter Density"}},
		{name: "emoji", disabled: false, want: []string{"📊 Statistics", "🔤 Letter Density"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emoji.SetEmojiDisabled(tt.disabled)

			out, err := NewTerminal(false).Format(buildReport("abc", report.DefaultOptions()))
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			output := string(out)

			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
			if strings.Contains(output, "[?]") {
				t.Errorf("unexpected unknown symbol:\n%s", output)
			}
		})
	}
}

func TestTerminalFormatter_Empty(t *testing.T) {
	r := buildReport("", report.DefaultOptions())
	out, err := NewTerminal(false).Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), "No letters found.") {
		t.Errorf("expected empty density message, got:\n%s", out)
	}
}

func TestTerminalFormatter_ShowAllHasNoHiddenLine(t *testing.T) {
	opts := report.DefaultOptions()
	opts.ShowAll = true
	out, err := NewTerminal(false).Format(buildReport("Mississippi river", opts))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(string(out), "more (use --all") {
		t.Errorf("unexpected hidden letter line:\n%s", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	r := buildReport("Hi! How are you? Fine.", report.DefaultOptions())
	out, err := NewJSON().Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if doc.Summary.WordCount != 5 {
		t.Errorf("word_count = %d, want 5", doc.Summary.WordCount)
	}
	if doc.Summary.SentenceCount != 3 {
		t.Errorf("sentence_count = %d, want 3", doc.Summary.SentenceCount)
	}
	if doc.Summary.TotalCharacters != 22 {
		t.Errorf("total_characters = %d, want 22", doc.Summary.TotalCharacters)
	}
	if doc.LetterFrequency["o"] != 2 {
		t.Errorf("letter_frequency[o] = %d, want 2", doc.LetterFrequency["o"])
	}
	if doc.Source != "sample.txt" {
		t.Errorf("source = %q, want sample.txt", doc.Source)
	}
}

func TestJSONFormatter_EmptyCollections(t *testing.T) {
	out, err := NewJSON().Format(buildReport("", report.DefaultOptions()))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), `"letter_frequency": {}`) {
		t.Errorf("expected empty letter_frequency object:\n%s", out)
	}
	if !strings.Contains(string(out), `"density": []`) {
		t.Errorf("expected empty density array:\n%s", out)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	opts := report.DefaultOptions()
	opts.ExcludeSpaces = true
	out, err := NewMarkdown().Format(buildReport("abc ABC", opts))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	output := string(out)

	for _, want := range []string{
		"# Text Analysis Report",
		"| Total Characters (no spaces) | 6 |",
		"| Word Count | 2 |",
		"| A | 2 | 33.33% |",
		"| Reading Time | 1 minute |",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestCSVFormatter(t *testing.T) {
	opts := report.DefaultOptions()
	opts.ShowAll = true
	out, err := NewCSV().Format(buildReport("aab", opts))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}

	want := [][]string{
		{"Letter", "Count", "Percentage"},
		{"a", "2", "66.67"},
		{"b", "1", "33.33"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if strings.Join(records[i], ",") != strings.Join(want[i], ",") {
			t.Errorf("record %d = %v, want %v", i, records[i], want[i])
		}
	}
}

func TestPromptFormatter(t *testing.T) {
	r := buildReport("The quick brown fox. It jumps!", report.DefaultOptions())
	out, err := NewPrompt().Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	output := string(out)

	for _, want := range []string{"Words: 6", "Sentences: 2", "The quick brown fox"} {
		if !strings.Contains(output, want) {
			t.Errorf("prompt missing %q:\n%s", want, output)
		}
	}
}

func TestTruncateExcerpt(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"short", "hello", 10, "hello"},
		{"trimmed", "  hello  ", 10, "hello"},
		{"cut", "hello world", 5, "hello..."},
		{"multibyte", "ééééé", 2, "éé..."},
		{"no limit", "hello", 0, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateExcerpt(tt.text, tt.limit); got != tt.want {
				t.Errorf("truncateExcerpt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.n); got != tt.want {
			t.Errorf("formatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestDensityBar(t *testing.T) {
	if got := densityBar(50, "#", "-"); got != strings.Repeat("#", 10)+strings.Repeat("-", 10) {
		t.Errorf("densityBar(50) = %q", got)
	}
	if got := densityBar(150, "#", "-"); got != strings.Repeat("#", barWidth) {
		t.Errorf("densityBar(150) = %q", got)
	}
	if got := densityBar(0, "#", "-"); got != strings.Repeat("-", barWidth) {
		t.Errorf("densityBar(0) = %q", got)
	}
}
