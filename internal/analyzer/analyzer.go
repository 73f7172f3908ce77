package analyzer

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// Analyzer computes text statistics
type Analyzer interface {
	// Analyze computes statistics for the given text
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

// Analyze computes word, sentence, character and letter statistics for text.
// It accepts any string and never fails.
func Analyze(text string) Analysis {
	normalized := Normalize(text)

	return Analysis{
		WordCount:       countWords(normalized),
		SentenceCount:   countSentences(normalized),
		CharacterCount:  countCharacters(text),
		LetterFrequency: countLetters(text),
	}
}

// Normalize trims text and collapses every run of whitespace into a single space
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Letters returns the letter frequency table ordered by count (highest first).
// Letters with the same count are ordered alphabetically.
func (a Analysis) Letters() []LetterCount {
	letters := make([]LetterCount, 0, len(a.LetterFrequency))
	for letter, count := range a.LetterFrequency {
		letters = append(letters, LetterCount{Letter: letter, Count: count})
	}

	sort.Slice(letters, func(i, j int) bool {
		if letters[i].Count != letters[j].Count {
			return letters[i].Count > letters[j].Count
		}
		return letters[i].Letter < letters[j].Letter
	})

	return letters
}

func countWords(normalized string) int {
	count := 0
	for _, word := range strings.Split(normalized, " ") {
		if word != "" {
			count++
		}
	}
	return count
}

func countSentences(normalized string) int {
	count := 0
	for _, sentence := range strings.FieldsFunc(normalized, isSentenceTerminator) {
		if strings.TrimSpace(sentence) != "" {
			count++
		}
	}
	return count
}

func countCharacters(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

func countLetters(text string) map[string]int {
	frequency := make(map[string]int)
	for _, r := range text {
		r = unicode.ToLower(r)
		if r >= 'a' && r <= 'z' {
			frequency[string(r)]++
		}
	}
	return frequency
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
