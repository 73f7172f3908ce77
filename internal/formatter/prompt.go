package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/TextSum/internal/report"
	"github.com/yildizm/go-promptfmt"
)

const excerptLimit = 2000

// WritingReviewPattern builds a prompt asking a language model to review a text
// using its computed statistics
type WritingReviewPattern struct {
	promptfmt.BasePattern
	Report       *report.Report
	ExcerptLimit int
}

// NewWritingReviewPattern creates a writing review pattern for r
func NewWritingReviewPattern(r *report.Report) *WritingReviewPattern {
	return &WritingReviewPattern{
		BasePattern: promptfmt.BasePattern{
			Description: "Reviews prose using word, sentence and letter statistics",
			Tags:        []string{"writing", "readability", "textsum"},
		},
		Report:       r,
		ExcerptLimit: excerptLimit,
	}
}

// WritingReview is the JSON shape the model is asked to answer with
type WritingReview struct {
	Summary          string   `json:"summary"`
	ReadabilityScore int      `json:"readability_score"` // 0-100
	AvgSentenceWords float64  `json:"avg_sentence_words"`
	Observations     []string `json:"observations"`
	Suggestions      []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"` // "high", "medium", "low"
	} `json:"suggestions"`
}

func (p *WritingReviewPattern) Build() *promptfmt.Prompt {
	r := p.Report
	pb := promptfmt.New().
		System("You are an editor reviewing prose for clarity and readability. Base your review on the statistics and excerpt provided.").
		User("Review this text.\n\nCharacters: %d\nWords: %d\nSentences: %d\nEstimated reading time: %s",
			r.TotalCharacters,
			r.Analysis.WordCount,
			r.Analysis.SentenceCount,
			r.ReadingTimeLabel())

	if len(r.Density) > 0 {
		var letters strings.Builder
		for _, share := range r.Density {
			fmt.Fprintf(&letters, "%s: %d (%.2f%%)\n", share.Letter, share.Count, share.Percentage)
		}
		pb.AddContext("letter_density", letters.String())
	}

	if excerpt := truncateExcerpt(r.Text, p.ExcerptLimit); excerpt != "" {
		pb.AddContext("excerpt", excerpt)
	}

	return pb.ExpectJSON(&WritingReview{}).Build()
}

// promptFormatter renders a writing review prompt ready to paste into a model
type promptFormatter struct{}

// NewPrompt creates a new prompt formatter
func NewPrompt() Formatter {
	return &promptFormatter{}
}

func (f *promptFormatter) Format(r *report.Report) ([]byte, error) {
	prompt := NewWritingReviewPattern(r).Build()
	body := prompt.String()

	if prompt.SystemPrompt != "" && !strings.Contains(body, prompt.SystemPrompt) {
		body = "## System\n" + prompt.SystemPrompt + "\n\n## User\n" + body
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return []byte(body), nil
}

// truncateExcerpt cuts text to at most limit runes, marking the cut
func truncateExcerpt(text string, limit int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
