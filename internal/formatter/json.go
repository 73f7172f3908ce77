package formatter

import (
	"encoding/json"
	"time"

	"github.com/yildizm/TextSum/internal/report"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(r *report.Report) ([]byte, error) {
	output := &JSONOutput{
		Source:          sourceName(r),
		GeneratedAt:     r.GeneratedAt,
		Summary:         createSummary(r),
		LetterFrequency: r.Analysis.LetterFrequency,
		Density:         r.Density,
		HiddenLetters:   r.HiddenLetters,
	}
	if output.LetterFrequency == nil {
		output.LetterFrequency = map[string]int{}
	}
	if output.Density == nil {
		output.Density = []report.LetterShare{}
	}

	return json.MarshalIndent(output, "", "  ")
}

// JSONOutput represents the JSON document
type JSONOutput struct {
	Source          string               `json:"source"`
	GeneratedAt     time.Time            `json:"generated_at"`
	Summary         *SummaryOutput       `json:"summary"`
	LetterFrequency map[string]int       `json:"letter_frequency"`
	Density         []report.LetterShare `json:"density"`
	HiddenLetters   int                  `json:"hidden_letters"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	TotalCharacters    int  `json:"total_characters"`
	ExcludeSpaces      bool `json:"exclude_spaces"`
	CharacterCount     int  `json:"character_count"`
	WordCount          int  `json:"word_count"`
	SentenceCount      int  `json:"sentence_count"`
	LetterCount        int  `json:"letter_count"`
	ReadingTimeMinutes int  `json:"reading_time_minutes"`
	WordsPerMinute     int  `json:"words_per_minute"`
}

func createSummary(r *report.Report) *SummaryOutput {
	return &SummaryOutput{
		TotalCharacters:    r.TotalCharacters,
		ExcludeSpaces:      r.Options.ExcludeSpaces,
		CharacterCount:     r.Analysis.CharacterCount,
		WordCount:          r.Analysis.WordCount,
		SentenceCount:      r.Analysis.SentenceCount,
		LetterCount:        r.Analysis.TotalLetters(),
		ReadingTimeMinutes: r.ReadingTime,
		WordsPerMinute:     r.Options.WordsPerMinute,
	}
}
