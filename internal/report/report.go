// Package report derives the figures shown next to a text analysis:
// reading time, the displayed character total and the letter density table.
package report

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/yildizm/TextSum/internal/analyzer"
)

const (
	DefaultVisibleLetters = 5
	DefaultWordsPerMinute = 200
)

// Options controls how a report is derived from an analysis
type Options struct {
	ExcludeSpaces  bool `json:"exclude_spaces"`
	ShowAll        bool `json:"show_all"`
	VisibleLetters int  `json:"visible_letters"`
	WordsPerMinute int  `json:"words_per_minute"`
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		VisibleLetters: DefaultVisibleLetters,
		WordsPerMinute: DefaultWordsPerMinute,
	}
}

// LetterShare is one row of the letter density table
type LetterShare struct {
	Letter     string  `json:"letter"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Report is an analysis together with everything derived for display
type Report struct {
	Source          string            `json:"source,omitempty"`
	Text            string            `json:"-"`
	Analysis        analyzer.Analysis `json:"analysis"`
	Options         Options           `json:"options"`
	RawLength       int               `json:"raw_length"`
	TotalCharacters int               `json:"total_characters"`
	ReadingTime     int               `json:"reading_time_minutes"`
	Density         []LetterShare     `json:"density"`
	HiddenLetters   int               `json:"hidden_letters"`
	GeneratedAt     time.Time         `json:"generated_at"`
}

// Build derives a report for text from its analysis
func Build(text string, analysis analyzer.Analysis, opts Options) *Report {
	if opts.VisibleLetters <= 0 {
		opts.VisibleLetters = DefaultVisibleLetters
	}
	if opts.WordsPerMinute <= 0 {
		opts.WordsPerMinute = DefaultWordsPerMinute
	}

	total := TotalCharacters(text, analysis, opts.ExcludeSpaces)

	limit := opts.VisibleLetters
	if opts.ShowAll {
		limit = 0
	}
	density := Density(analysis, total, limit)

	return &Report{
		Text:            text,
		Analysis:        analysis,
		Options:         opts,
		RawLength:       utf8.RuneCountInString(text),
		TotalCharacters: total,
		ReadingTime:     ReadingTime(analysis.WordCount, opts.WordsPerMinute),
		Density:         density,
		HiddenLetters:   analysis.DistinctLetters() - len(density),
		GeneratedAt:     time.Now(),
	}
}

// WithSource sets the name of the text source and returns the report
func (r *Report) WithSource(source string) *Report {
	r.Source = source
	return r
}

// HasMoreLetters reports whether the density table can be expanded or collapsed
func (r *Report) HasMoreLetters() bool {
	return r.Analysis.DistinctLetters() > r.Options.VisibleLetters
}

// ReadingTimeLabel renders the reading time as "1 minute" or "N minutes"
func (r *Report) ReadingTimeLabel() string {
	if r.ReadingTime == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", r.ReadingTime)
}

// ReadingTime returns the estimated minutes needed to read words, never less than one
func ReadingTime(words, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	return max(minutes, 1)
}

// TotalCharacters returns the character figure to display: the raw text length,
// or the whitespace-free count when spaces are excluded
func TotalCharacters(text string, analysis analyzer.Analysis, excludeSpaces bool) int {
	if excludeSpaces {
		return analysis.CharacterCount
	}
	return utf8.RuneCountInString(text)
}

// Density returns letters ordered by count with their share of total.
// A limit of zero or less keeps every letter.
func Density(analysis analyzer.Analysis, total, limit int) []LetterShare {
	letters := analysis.Letters()
	if limit > 0 && len(letters) > limit {
		letters = letters[:limit]
	}

	shares := make([]LetterShare, 0, len(letters))
	for _, letter := range letters {
		shares = append(shares, LetterShare{
			Letter:     letter.Letter,
			Count:      letter.Count,
			Percentage: Percentage(letter.Count, total),
		})
	}
	return shares
}

// Percentage returns count as a share of total, rounded to two decimals
func Percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
