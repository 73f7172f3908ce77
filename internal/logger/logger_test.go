package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLoggerVerbosity(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *Logger)
		want    string
	}{
		{name: "debug hidden", verbose: false, log: func(l *Logger) { l.Debug("hidden") }, want: ""},
		{name: "info hidden", verbose: false, log: func(l *Logger) { l.Info("hidden") }, want: ""},
		{name: "debug shown", verbose: true, log: func(l *Logger) { l.Debug("value %d", 7) }, want: "DEBUG [watch] value 7"},
		{name: "info shown", verbose: true, log: func(l *Logger) { l.Info("ready") }, want: "INFO [watch] ready"},
		{name: "warn always", verbose: false, log: func(l *Logger) { l.Warn("careful") }, want: "WARN [watch] careful"},
		{name: "error always", verbose: false, log: func(l *Logger) { l.Error("broken") }, want: "ERROR [watch] broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			verbose := tt.verbose
			l := NewWithCallback("watch", func() bool { return verbose }).WithWriter(&buf)

			tt.log(l)

			got := buf.String()
			if tt.want == "" {
				if got != "" {
					t.Errorf("expected no output, got %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("expected output to contain %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("cli", nil).WithWriter(&buf)

	l.WarnWithFields("reload failed", []Field{Path("notes.txt"), Error(errors.New("boom")), Count(3)})

	got := buf.String()
	if !strings.Contains(got, "[path=notes.txt error=boom count=3]") {
		t.Errorf("unexpected field rendering: %q", got)
	}
}

func TestLoggerPercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New("", nil).WithWriter(&buf)

	l.Warn("100% done")

	got := buf.String()
	if !strings.Contains(got, "[main] 100% done") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestWithComponentKeepsWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New("root", nil).WithWriter(&buf).WithComponent("child")

	l.Error("failed")

	if !strings.Contains(buf.String(), "[child] failed") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
