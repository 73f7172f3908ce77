// Package monitor keeps running statistics for long-lived commands such as watch.
package monitor

import (
	"math"
	"sync/atomic"
	"time"
)

// Counter is a thread-safe counter metric
type Counter struct {
	value atomic.Int64
	name  string
}

// NewCounter creates a new counter metric
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	c.value.Add(1)
}

// Add adds the given value to the counter
func (c *Counter) Add(value int64) {
	c.value.Add(value)
}

// Get returns the current counter value
func (c *Counter) Get() int64 {
	return c.value.Load()
}

// Name returns the counter name
func (c *Counter) Name() string {
	return c.name
}

// Timer records durations of one kind of operation
type Timer struct {
	count   atomic.Int64
	total   atomic.Int64
	minimum atomic.Int64
	maximum atomic.Int64
	errors  atomic.Int64
	name    string
}

// NewTimer creates a new timer metric
func NewTimer(name string) *Timer {
	t := &Timer{name: name}
	t.minimum.Store(math.MaxInt64)
	return t
}

// Record records a duration measurement
func (t *Timer) Record(duration time.Duration) {
	nanos := duration.Nanoseconds()

	t.count.Add(1)
	t.total.Add(nanos)

	for {
		current := t.minimum.Load()
		if nanos >= current || t.minimum.CompareAndSwap(current, nanos) {
			break
		}
	}
	for {
		current := t.maximum.Load()
		if nanos <= current || t.maximum.CompareAndSwap(current, nanos) {
			break
		}
	}
}

// RecordError counts a failed operation
func (t *Timer) RecordError() {
	t.errors.Add(1)
}

// Count returns the number of recorded measurements
func (t *Timer) Count() int64 {
	return t.count.Load()
}

// Errors returns the number of failed operations
func (t *Timer) Errors() int64 {
	return t.errors.Load()
}

// TotalTime returns the total time of all measurements
func (t *Timer) TotalTime() time.Duration {
	return time.Duration(t.total.Load())
}

// MinTime returns the minimum recorded time
func (t *Timer) MinTime() time.Duration {
	minimum := t.minimum.Load()
	if minimum == math.MaxInt64 {
		return 0
	}
	return time.Duration(minimum)
}

// MaxTime returns the maximum recorded time
func (t *Timer) MaxTime() time.Duration {
	return time.Duration(t.maximum.Load())
}

// AvgTime returns the average time of all measurements
func (t *Timer) AvgTime() time.Duration {
	count := t.count.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(t.total.Load() / count)
}

// Name returns the timer name
func (t *Timer) Name() string {
	return t.name
}
