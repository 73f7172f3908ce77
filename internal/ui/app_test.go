package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testState() State {
	return State{VisibleLetters: 5, WordsPerMinute: 200}
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func TestModel_TypingUpdatesAnalysis(t *testing.T) {
	m := NewModel("", testState())

	if m.Report().Analysis.WordCount != 0 {
		t.Fatalf("initial WordCount = %d, want 0", m.Report().Analysis.WordCount)
	}

	typeText(m, "Hi! How are you? Fine.")

	r := m.Report()
	if m.Text() != "Hi! How are you? Fine." {
		t.Errorf("Text() = %q", m.Text())
	}
	if r.Analysis.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", r.Analysis.WordCount)
	}
	if r.Analysis.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", r.Analysis.SentenceCount)
	}
	if r.TotalCharacters != 22 {
		t.Errorf("TotalCharacters = %d, want 22", r.TotalCharacters)
	}
}

func TestModel_PrefilledText(t *testing.T) {
	m := NewModel("abc ABC", testState())

	if got := m.Report().Analysis.LetterFrequency["a"]; got != 2 {
		t.Errorf("frequency[a] = %d, want 2", got)
	}
}

func TestModel_PrefilledTextOverLimit(t *testing.T) {
	state := testState()
	state.LimitEnabled = true
	state.CharLimit = 10

	m := NewModel(strings.Repeat("a", 25), state)

	if got := len([]rune(m.Text())); got != 25 {
		t.Fatalf("pre-filled text length = %d, want 25", got)
	}
	if warning := m.renderLimitWarning(); !strings.Contains(warning, "15 characters over the limit of 10") {
		t.Errorf("expected limit warning, got %q", warning)
	}

	typeText(m, "b")
	if strings.Contains(m.Text(), "b") {
		t.Errorf("typing past the limit should be blocked, got %q", m.Text())
	}
}

func TestModel_ExcludeSpacesToggle(t *testing.T) {
	m := NewModel("a b c", testState())

	if m.Report().TotalCharacters != 5 {
		t.Fatalf("TotalCharacters = %d, want 5", m.Report().TotalCharacters)
	}

	press(m, tea.KeyCtrlE)
	if !m.State().ExcludeSpaces {
		t.Fatal("ExcludeSpaces should be on after ctrl+e")
	}
	if m.Report().TotalCharacters != 3 {
		t.Errorf("TotalCharacters = %d, want 3", m.Report().TotalCharacters)
	}
	if m.Text() != "a b c" {
		t.Errorf("toggle must not edit the text, got %q", m.Text())
	}

	press(m, tea.KeyCtrlE)
	if m.Report().TotalCharacters != 5 {
		t.Errorf("TotalCharacters = %d, want 5 after toggling back", m.Report().TotalCharacters)
	}
}

func TestModel_ShowAllToggle(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantShowAll bool
		wantToggle  bool
	}{
		{"few letters", "abc", false, false},
		{"exactly five", "abcde", false, false},
		{"more than five", "abcdefg", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(tt.text, testState())

			hasToggle := strings.Contains(m.View(), "See more")
			if hasToggle != tt.wantToggle {
				t.Errorf("See more shown = %v, want %v", hasToggle, tt.wantToggle)
			}

			press(m, tea.KeyCtrlA)
			if m.State().ShowAll != tt.wantShowAll {
				t.Errorf("ShowAll = %v, want %v", m.State().ShowAll, tt.wantShowAll)
			}
			if tt.wantShowAll {
				if len(m.Report().Density) != 7 {
					t.Errorf("len(Density) = %d, want 7", len(m.Report().Density))
				}
				if !strings.Contains(m.View(), "Show less") {
					t.Error("expected Show less after expanding")
				}
			}
		})
	}
}

func TestModel_DensityPercentages(t *testing.T) {
	m := NewModel("aab", testState())
	view := m.View()

	for _, want := range []string{"2 (66.67%)", "1 (33.33%)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_EmptyPlaceholder(t *testing.T) {
	m := NewModel("", testState())
	if !strings.Contains(m.View(), emptyDensityText) {
		t.Error("expected empty density placeholder")
	}

	typeText(m, "x")
	if strings.Contains(m.View(), emptyDensityText) {
		t.Error("placeholder should disappear once text is entered")
	}
}

func TestModel_ReadingTime(t *testing.T) {
	m := NewModel(strings.Repeat("word ", 401), testState())
	if !strings.Contains(m.View(), "Approx. reading time: 3 minutes") {
		t.Errorf("expected 3 minutes reading time")
	}

	m = NewModel("", testState())
	if !strings.Contains(m.View(), "Approx. reading time: 1 minute") {
		t.Errorf("expected 1 minute reading time for empty text")
	}
}

func TestModel_DarkModeToggle(t *testing.T) {
	m := NewModel("", testState())

	if m.styles.Theme.Name != "light" {
		t.Fatalf("theme = %q, want light", m.styles.Theme.Name)
	}
	press(m, tea.KeyCtrlD)
	if !m.State().DarkMode || m.styles.Theme.Name != "dark" {
		t.Errorf("expected dark theme after ctrl+d, got %q", m.styles.Theme.Name)
	}
}

func TestModel_CharLimitToggle(t *testing.T) {
	state := testState()
	state.CharLimit = 5
	m := NewModel("", state)

	press(m, tea.KeyCtrlL)
	if !m.State().LimitEnabled {
		t.Fatal("LimitEnabled should be on after ctrl+l")
	}

	typeText(m, "abcdefgh")
	if m.Text() != "abcde" {
		t.Errorf("Text() = %q, want input truncated to the limit", m.Text())
	}

	press(m, tea.KeyCtrlL)
	typeText(m, "fg")
	if m.Text() != "abcdefg" {
		t.Errorf("Text() = %q, want limit lifted", m.Text())
	}
}

func TestModel_Clear(t *testing.T) {
	m := NewModel("some text here", testState())
	press(m, tea.KeyCtrlX)

	if m.Text() != "" {
		t.Errorf("Text() = %q, want empty", m.Text())
	}
	if m.Report().Analysis.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", m.Report().Analysis.WordCount)
	}
}

func TestModel_Quit(t *testing.T) {
	for _, keyType := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewModel("", testState())
		if cmd := press(m, keyType); cmd == nil {
			t.Errorf("%v: expected quit command", keyType)
		}
		if m.View() != "" {
			t.Errorf("%v: view should be empty after quitting", keyType)
		}
	}
}

func TestState_EffectiveCharLimit(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  int
	}{
		{"disabled", State{CharLimit: 50}, 0},
		{"configured", State{LimitEnabled: true, CharLimit: 50}, 50},
		{"default", State{LimitEnabled: true}, DefaultCharLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.EffectiveCharLimit(); got != tt.want {
				t.Errorf("EffectiveCharLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestThemeFor(t *testing.T) {
	if ThemeFor(true).Name != "dark" {
		t.Error("ThemeFor(true) should be dark")
	}
	if ThemeFor(false).Name != "light" {
		t.Error("ThemeFor(false) should be light")
	}
	if !ResolveDarkMode("dark") || ResolveDarkMode("light") {
		t.Error("ResolveDarkMode should honour explicit names")
	}
}
