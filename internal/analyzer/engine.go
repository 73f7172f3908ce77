package analyzer

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/yildizm/TextSum/internal/logger"
)

// Engine runs text analysis on behalf of the CLI and the terminal UI
type Engine struct {
	log *logger.Logger
}

var _ Analyzer = (*Engine)(nil)

// NewEngine creates an analysis engine. A nil logger disables logging.
func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.New("analyzer", nil)
	}
	return &Engine{log: log.WithComponent("analyzer")}
}

// Analyze performs the analysis unless ctx is already done
func (e *Engine) Analyze(ctx context.Context, text string) (*Analysis, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	start := time.Now()
	analysis := Analyze(text)

	e.log.DebugWithFields("analysis complete", []logger.Field{
		logger.F("runes", utf8.RuneCountInString(text)),
		logger.F("words", analysis.WordCount),
		logger.Duration(time.Since(start)),
	})

	return &analysis, nil
}
