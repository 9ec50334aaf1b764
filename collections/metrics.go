package collections

import (
	"sync/atomic"
	"time"
)

// Op names a mutating List operation in logs and metrics.
type Op string

const (
	OpPush    Op = "push"
	OpUnshift Op = "unshift"
	OpSplice  Op = "splice"
	OpPop     Op = "pop"
	OpShift   Op = "shift"
	OpRemove  Op = "remove"
	OpClear   Op = "clear"
)

// MetricsCollector observes List mutations.
// Implement it to feed a monitoring system; see package prommetrics for a
// Prometheus implementation.
type MetricsCollector interface {
	// RecordInsert is called after every insertion attempt. count is the
	// number of elements stored (0 when err is non-nil).
	RecordInsert(op Op, count int, duration time.Duration, err error)

	// RecordRemove is called after every removal that retracted at least
	// one element.
	RecordRemove(op Op, count int, duration time.Duration)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(Op, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRemove(Op, int, time.Duration)        {}

// BasicMetricsCollector keeps simple in-memory counters.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertItems      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	RemoveCount      atomic.Int64
	RemoveItems      atomic.Int64
	RemoveTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(_ Op, count int, duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertItems.Add(int64(count))
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(_ Op, count int, duration time.Duration) {
	b.RemoveCount.Add(1)
	b.RemoveItems.Add(int64(count))
	b.RemoveTotalNanos.Add(duration.Nanoseconds())
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount  int64
	InsertItems  int64
	InsertErrors int64
	RemoveCount  int64
	RemoveItems  int64
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:  b.InsertCount.Load(),
		InsertItems:  b.InsertItems.Load(),
		InsertErrors: b.InsertErrors.Load(),
		RemoveCount:  b.RemoveCount.Load(),
		RemoveItems:  b.RemoveItems.Load(),
	}
}
