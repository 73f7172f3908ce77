package formatter

import (
	"fmt"

	"github.com/yildizm/TextSum/internal/report"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(r *report.Report) ([]byte, error)
}

// Formats lists the accepted output format names
var Formats = []string{"text", "json", "markdown", "csv", "prompt"}

// New returns the formatter for the given format name
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	case "prompt":
		return NewPrompt(), nil
	case "text", "terminal", "":
		return NewTerminal(color), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
