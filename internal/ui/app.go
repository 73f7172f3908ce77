// Package ui implements the live text analysis view.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/TextSum/internal/analyzer"
	"github.com/yildizm/TextSum/internal/emoji"
	"github.com/yildizm/TextSum/internal/report"
	"github.com/yildizm/TextSum/internal/ui/components"
)

const (
	emptyDensityText = "No characters found. Start typing to see letter density."
	inputPlaceholder = "Start typing here... (or paste your text)"

	defaultWidth = 80
	inputHeight  = 8
)

// Model is the live view: a text area with statistics recomputed on every edit
type Model struct {
	input  textarea.Model
	help   help.Model
	keys   keyMap
	state  State
	styles *Styles

	text   string
	report *report.Report

	width    int
	height   int
	quitting bool
}

// NewModel creates a live view pre-filled with text
func NewModel(text string, state State) *Model {
	if state.VisibleLetters <= 0 {
		state.VisibleLetters = report.DefaultVisibleLetters
	}
	if state.WordsPerMinute <= 0 {
		state.WordsPerMinute = report.DefaultWordsPerMinute
	}

	m := &Model{
		input: newInput(state),
		help:  help.New(),
		keys:  defaultKeyMap(),
		state: state,
		width: defaultWidth,
	}
	m.applyTheme()
	m.resize(defaultWidth, 0)

	// the limit only guards typing; pre-loaded text is kept whole and flagged by the warning
	m.input.SetValue(text)
	m.input.CharLimit = state.EffectiveCharLimit()
	m.input.Focus()
	m.text = m.input.Value()
	m.rebuild()

	return m
}

func newInput(state State) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = inputPlaceholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(inputHeight)

	// ctrl+a, ctrl+e and ctrl+d belong to the view toggles
	ta.KeyMap.LineStart.SetKeys("home")
	ta.KeyMap.LineEnd.SetKeys("end")
	ta.KeyMap.DeleteCharacterForward.SetKeys("delete")

	return ta
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleKeyPress(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// handleKeyPress applies view toggles; keys it does not handle go to the text area
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, m.keys.ExcludeSpaces):
		m.state.ExcludeSpaces = !m.state.ExcludeSpaces
		m.rebuild()
	case key.Matches(msg, m.keys.ShowAll):
		if m.report.HasMoreLetters() {
			m.state.ShowAll = !m.state.ShowAll
			m.rebuild()
		}
	case key.Matches(msg, m.keys.DarkMode):
		m.state.DarkMode = !m.state.DarkMode
		m.applyTheme()
	case key.Matches(msg, m.keys.CharLimit):
		m.state.LimitEnabled = !m.state.LimitEnabled
		m.input.CharLimit = m.state.EffectiveCharLimit()
	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		m.refresh()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return nil, false
	}
	return nil, true
}

// refresh re-analyzes the text when the text area content changed
func (m *Model) refresh() {
	if value := m.input.Value(); value != m.text {
		m.text = value
		m.rebuild()
	}
}

func (m *Model) rebuild() {
	m.report = report.Build(m.text, analyzer.Analyze(m.text), m.state.ReportOptions())
}

func (m *Model) applyTheme() {
	theme := ThemeFor(m.state.DarkMode)
	m.styles = NewStyles(theme, m.state.Color)

	if !m.state.Color {
		return
	}
	m.input.FocusedStyle.Text = lipgloss.NewStyle().Foreground(theme.Foreground)
	m.input.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.Muted)
	m.input.FocusedStyle.CursorLine = lipgloss.NewStyle().Foreground(theme.Foreground)
	m.input.BlurredStyle = m.input.FocusedStyle
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	inputWidth := width - 6
	if inputWidth > 100 {
		inputWidth = 100
	}
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.input.SetWidth(inputWidth)
}

// State returns the current toggles
func (m *Model) State() State {
	return m.state
}

// Report returns the report for the current text
func (m *Model) Report() *report.Report {
	return m.report
}

// Text returns the current text area content
func (m *Model) Text() string {
	return m.text
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.styles.Input.Render(m.input.View()),
		m.renderOptions(),
	}
	if warning := m.renderLimitWarning(); warning != "" {
		sections = append(sections, warning)
	}
	sections = append(sections,
		"",
		m.renderStats(),
		"",
		m.renderDensity(),
		"",
		m.help.View(m.keys),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderHeader() string {
	mode := emoji.GetEmoji("light") + " light"
	if m.state.DarkMode {
		mode = emoji.GetEmoji("dark") + " dark"
	}

	title := m.styles.Title.Render("Analyze your text")
	subtitle := m.styles.Subtitle.Render("in real-time.")
	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+m.styles.Muted.Render(mode),
		subtitle,
		"",
	)
}

func (m *Model) renderOptions() string {
	limit := "Character Limit"
	if m.state.LimitEnabled {
		limit = fmt.Sprintf("Character Limit (%d)", m.state.EffectiveCharLimit())
	}

	options := fmt.Sprintf("%s Exclude Spaces   %s %s",
		checkbox(m.state.ExcludeSpaces), checkbox(m.state.LimitEnabled), limit)
	reading := "Approx. reading time: " + m.report.ReadingTimeLabel()

	return m.styles.Muted.Render(options + "    " + reading)
}

func (m *Model) renderLimitWarning() string {
	limit := m.state.EffectiveCharLimit()
	if limit == 0 || m.report.RawLength <= limit {
		return ""
	}
	return m.styles.Warning.Render(fmt.Sprintf("%s %d characters over the limit of %d",
		emoji.GetEmoji("warning"), m.report.RawLength-limit, limit))
}

func (m *Model) renderStats() string {
	theme := m.styles.Theme
	cardWidth := 24

	cards := []*components.StatsCard{
		components.NewStatsCard("Total Characters", m.report.TotalCharacters).
			SetIcon(emoji.GetEmoji("characters")),
		components.NewStatsCard("Word Count", m.report.Analysis.WordCount).
			SetIcon(emoji.GetEmoji("words")),
		components.NewStatsCard("Sentence Count", m.report.Analysis.SentenceCount).
			SetIcon(emoji.GetEmoji("sentences")),
	}
	backgrounds := []lipgloss.Color{theme.CharactersCard, theme.WordsCard, theme.SentencesCard}

	row := components.NewStatsRow(2)
	for i, card := range cards {
		card.SetWidth(cardWidth)
		if m.state.Color {
			card.SetColors(backgrounds[i], theme.Foreground, theme.Muted)
		}
		row.AddCard(card)
	}
	return row.Render(m.width - 4)
}

func (m *Model) renderDensity() string {
	lines := []string{m.styles.Header.Render("Letter Density"), ""}

	if m.text == "" {
		lines = append(lines, m.styles.Muted.Render(emptyDensityText))
		return strings.Join(lines, "\n")
	}

	list := components.NewDensityList(m.report.Density, m.densityBarWidth())
	if m.state.Color {
		list.BarColor = m.styles.Theme.Bar
		list.TrackColor = m.styles.Theme.Track
		list.LabelColor = m.styles.Theme.Muted
	}
	if len(m.report.Density) > 0 {
		lines = append(lines, list.Render())
	}

	if m.report.HasMoreLetters() {
		toggle := "See more ▼"
		if m.state.ShowAll {
			toggle = "Show less ▲"
		}
		lines = append(lines, "", m.styles.Toggle.Render(toggle)+m.styles.Muted.Render("  (ctrl+a)"))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) densityBarWidth() int {
	width := m.width - 30
	if width > 40 {
		return 40
	}
	if width < 10 {
		return 10
	}
	return width
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// Run starts the live view and blocks until the user quits
func Run(text string, state State) error {
	program := tea.NewProgram(NewModel(text, state), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run live view: %w", err)
	}
	return nil
}
