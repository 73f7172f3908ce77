package input

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-logparser"
)

// Mode selects how raw input is turned into text for analysis
type Mode string

const (
	// ModePlain analyzes the input as-is
	ModePlain Mode = "plain"
	// ModeLog parses the input as log lines and analyzes only their messages
	ModeLog Mode = "log"
)

// ParseMode converts a configuration or flag value into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "text":
		return ModePlain, nil
	case "log", "logs":
		return ModeLog, nil
	default:
		return "", fmt.Errorf("unknown input mode %q (must be one of: plain, log)", s)
	}
}

// Extract returns the text to analyze for raw input in the given mode.
// logFormat is one of auto, json, logfmt or text and only matters in log mode.
func Extract(raw string, mode Mode, logFormat string) (string, error) {
	if mode != ModeLog {
		return raw, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	parser, err := newLogParser(logFormat)
	if err != nil {
		return "", err
	}

	entries, err := parser.ParseString(strings.TrimRight(raw, "\n"))
	if err != nil {
		return "", fmt.Errorf("failed to parse logs: %w", err)
	}

	messages := make([]string, 0, len(entries))
	for _, entry := range entries {
		if msg := strings.TrimSpace(entry.Message); msg != "" {
			messages = append(messages, msg)
		}
	}

	return strings.Join(messages, "\n"), nil
}

// messageParser is the part of the go-logparser API used for extraction
type messageParser interface {
	ParseString(input string) ([]logparser.LogEntry, error)
}

func newLogParser(format string) (messageParser, error) {
	switch strings.ToLower(format) {
	case "", "auto":
		return logparser.New(), nil
	case "json":
		return logparser.NewWithFormat(logparser.FormatJSON), nil
	case "logfmt":
		return logparser.NewWithFormat(logparser.FormatLogfmt), nil
	case "text":
		return logparser.NewWithFormat(logparser.FormatText), nil
	default:
		return nil, fmt.Errorf("unknown log format %s. Available formats: auto, json, logfmt, text", format)
	}
}
