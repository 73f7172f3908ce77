package analyzer

// Analysis holds the statistics computed for a single piece of text.
// A fresh value is built on every call and never mutated afterwards.
type Analysis struct {
	WordCount       int            `json:"word_count"`
	SentenceCount   int            `json:"sentence_count"`
	CharacterCount  int            `json:"character_count"`
	LetterFrequency map[string]int `json:"letter_frequency"`
}

// LetterCount is a single entry of the letter frequency table
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// TotalLetters returns the number of ASCII letters counted in the text
func (a Analysis) TotalLetters() int {
	total := 0
	for _, count := range a.LetterFrequency {
		total += count
	}
	return total
}

// DistinctLetters returns how many different letters occur in the text
func (a Analysis) DistinctLetters() int {
	return len(a.LetterFrequency)
}
