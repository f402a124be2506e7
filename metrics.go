package chunklist

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring
// systems like Prometheus.
//
// All methods are invoked synchronously from the mutating call, so
// implementations should be cheap; expensive work belongs on the
// collector's side of a channel.
type MetricsCollector interface {
	// RecordInsert is called after each element insertion.
	RecordInsert()

	// RecordRemove is called after each element removal.
	RecordRemove()

	// RecordSplit is called after a chunk split. chunkCount is the
	// number of chunks after the split.
	RecordSplit(chunkCount int)

	// RecordMerge is called after a chunk merge. chunkCount is the
	// number of chunks after the merge.
	RecordMerge(chunkCount int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert()   {}
func (NoopMetricsCollector) RecordRemove()   {}
func (NoopMetricsCollector) RecordSplit(int) {}
func (NoopMetricsCollector) RecordMerge(int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external
// dependencies.
type BasicMetricsCollector struct {
	InsertCount   atomic.Int64
	RemoveCount   atomic.Int64
	SplitCount    atomic.Int64
	MergeCount    atomic.Int64
	MaxChunkCount atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert() {
	b.InsertCount.Add(1)
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove() {
	b.RemoveCount.Add(1)
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit(chunkCount int) {
	b.SplitCount.Add(1)
	for {
		prev := b.MaxChunkCount.Load()
		if int64(chunkCount) <= prev || b.MaxChunkCount.CompareAndSwap(prev, int64(chunkCount)) {
			return
		}
	}
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(chunkCount int) {
	b.MergeCount.Add(1)
}
