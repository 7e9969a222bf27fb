package bitvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    allocBytes   prometheus.Counter
//	    rankBuilds   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRankBuild(words int, duration time.Duration) {
//	    p.rankBuilds.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordAlloc is called after each vector allocation attempt.
	// bytes is the size of the backing arrays, err is nil if successful.
	RecordAlloc(bytes int64, err error)

	// RecordRelease is called when a vector returns its backing arrays.
	RecordRelease(bytes int64)

	// RecordRankBuild is called after each rank index rebuild over words words.
	RecordRankBuild(words int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int64, error) {}
func (NoopMetricsCollector) RecordRelease(int64) {}
func (NoopMetricsCollector) RecordRankBuild(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount         atomic.Int64
	AllocErrors        atomic.Int64
	AllocBytes         atomic.Int64
	ReleaseCount       atomic.Int64
	ReleaseBytes       atomic.Int64
	RankBuildCount     atomic.Int64
	RankBuildWords     atomic.Int64
	RankBuildTotalNano atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(bytes int64, err error) {
	b.AllocCount.Add(1)
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocBytes.Add(bytes)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(bytes int64) {
	b.ReleaseCount.Add(1)
	b.ReleaseBytes.Add(bytes)
}

// RecordRankBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRankBuild(words int, duration time.Duration) {
	b.RankBuildCount.Add(1)
	b.RankBuildWords.Add(int64(words))
	b.RankBuildTotalNano.Add(duration.Nanoseconds())
}

// LiveBytes returns allocated minus released bytes.
func (b *BasicMetricsCollector) LiveBytes() int64 {
	return b.AllocBytes.Load() - b.ReleaseBytes.Load()
}
