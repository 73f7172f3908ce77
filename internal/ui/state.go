package ui

import "github.com/yildizm/TextSum/internal/report"

// DefaultCharLimit is used when the limit is switched on without a configured value
const DefaultCharLimit = 1000

// State holds the user toggles of the live view
type State struct {
	ExcludeSpaces  bool
	ShowAll        bool
	DarkMode       bool
	LimitEnabled   bool
	CharLimit      int
	VisibleLetters int
	WordsPerMinute int
	Color          bool
}

// DefaultState returns the state used when nothing is configured
func DefaultState() State {
	return State{
		VisibleLetters: report.DefaultVisibleLetters,
		WordsPerMinute: report.DefaultWordsPerMinute,
		Color:          !IsColorDisabled(),
	}
}

// ReportOptions converts the state into report options
func (s State) ReportOptions() report.Options {
	return report.Options{
		ExcludeSpaces:  s.ExcludeSpaces,
		ShowAll:        s.ShowAll,
		VisibleLetters: s.VisibleLetters,
		WordsPerMinute: s.WordsPerMinute,
	}
}

// EffectiveCharLimit returns the limit to enforce on the text area, 0 for none
func (s State) EffectiveCharLimit() int {
	if !s.LimitEnabled {
		return 0
	}
	if s.CharLimit > 0 {
		return s.CharLimit
	}
	return DefaultCharLimit
}
