package monitor

import (
	"fmt"
	"time"

	"github.com/yildizm/go-termfmt"
)

// OperationType names a timed step of a session
type OperationType string

const (
	OperationRead    OperationType = "read"
	OperationAnalyze OperationType = "analyze"
	OperationRender  OperationType = "render"
)

var operations = []OperationType{OperationRead, OperationAnalyze, OperationRender}

// Session collects statistics for one run of a long-lived command
type Session struct {
	started time.Time
	timers  map[OperationType]*Timer

	Reports *Counter
	Skipped *Counter
	Bytes   *Counter
}

// OperationStats summarizes the timings of one operation
type OperationStats struct {
	Operation OperationType `json:"operation"`
	Count     int64         `json:"count"`
	Errors    int64         `json:"errors"`
	Min       time.Duration `json:"min"`
	Max       time.Duration `json:"max"`
	Avg       time.Duration `json:"avg"`
}

// Snapshot is a point-in-time copy of the session statistics
type Snapshot struct {
	Uptime     time.Duration    `json:"uptime"`
	Reports    int64            `json:"reports"`
	Skipped    int64            `json:"skipped"`
	Bytes      int64            `json:"bytes"`
	Operations []OperationStats `json:"operations"`
}

// NewSession starts a session
func NewSession() *Session {
	timers := make(map[OperationType]*Timer, len(operations))
	for _, op := range operations {
		timers[op] = NewTimer(string(op))
	}

	return &Session{
		started: time.Now(),
		timers:  timers,
		Reports: NewCounter("reports"),
		Skipped: NewCounter("skipped"),
		Bytes:   NewCounter("bytes"),
	}
}

// Track times fn as operation. Failed runs are counted but not timed.
func (s *Session) Track(operation OperationType, fn func() error) error {
	start := time.Now()
	err := fn()

	timer, ok := s.timers[operation]
	if !ok {
		return err
	}
	if err != nil {
		timer.RecordError()
		return err
	}
	timer.Record(time.Since(start))
	return nil
}

// Timer returns the timer of an operation, or nil for unknown operations
func (s *Session) Timer(operation OperationType) *Timer {
	return s.timers[operation]
}

// Snapshot returns the current statistics
func (s *Session) Snapshot() Snapshot {
	snapshot := Snapshot{
		Uptime:     time.Since(s.started),
		Reports:    s.Reports.Get(),
		Skipped:    s.Skipped.Get(),
		Bytes:      s.Bytes.Get(),
		Operations: make([]OperationStats, 0, len(operations)),
	}

	for _, op := range operations {
		timer := s.timers[op]
		snapshot.Operations = append(snapshot.Operations, OperationStats{
			Operation: op,
			Count:     timer.Count(),
			Errors:    timer.Errors(),
			Min:       timer.MinTime(),
			Max:       timer.MaxTime(),
			Avg:       timer.AvgTime(),
		})
	}

	return snapshot
}

// Summary renders the snapshot as a tree
func (s Snapshot) Summary(opts *termfmt.TerminalOptions) string {
	items := []termfmt.TreeItem{
		{Label: "Uptime", Value: s.Uptime.Round(time.Second).String()},
		{Label: "Reports", Value: fmt.Sprintf("%d", s.Reports)},
		{Label: "Unchanged saves", Value: fmt.Sprintf("%d", s.Skipped)},
		{Label: "Bytes read", Value: fmt.Sprintf("%d", s.Bytes)},
	}

	timings := make([]termfmt.TreeItem, 0, len(s.Operations))
	for i, op := range s.Operations {
		value := fmt.Sprintf("%d runs", op.Count)
		if op.Count > 0 {
			value = fmt.Sprintf("%d runs, avg %s, max %s", op.Count, op.Avg, op.Max)
		}
		if op.Errors > 0 {
			value += fmt.Sprintf(", %d failed", op.Errors)
		}
		timings = append(timings, termfmt.TreeItem{
			Label: string(op.Operation),
			Value: value,
			Last:  i == len(s.Operations)-1,
		})
	}
	items = append(items, termfmt.TreeItem{Label: "Timings", Children: timings, Last: true})

	return termfmt.TreeViewWithOptions(items, opts)
}
