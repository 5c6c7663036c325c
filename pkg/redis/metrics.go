package redis

import (
	"sync/atomic"
	"time"
)

// Metrics tracks cache performance statistics
type Metrics struct {
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64
	cacheErrors atomic.Uint64

	getOperations    atomic.Uint64
	setOperations    atomic.Uint64
	deleteOperations atomic.Uint64

	// Latency totals in nanoseconds
	totalGetLatency atomic.Uint64
	totalSetLatency atomic.Uint64

	compressionSaves  atomic.Uint64 // Bytes saved via compression
	invalidationCount atomic.Uint64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordCacheHit increments the cache hit counter
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

// RecordCacheMiss increments the cache miss counter
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Add(1)
}

// RecordCacheError increments the cache error counter
func (m *Metrics) RecordCacheError() {
	m.cacheErrors.Add(1)
}

// RecordGet records a get operation with latency
func (m *Metrics) RecordGet(duration time.Duration) {
	m.getOperations.Add(1)
	m.totalGetLatency.Add(uint64(duration.Nanoseconds()))
}

// RecordSet records a set operation with latency
func (m *Metrics) RecordSet(duration time.Duration) {
	m.setOperations.Add(1)
	m.totalSetLatency.Add(uint64(duration.Nanoseconds()))
}

// RecordDelete increments the delete operation counter
func (m *Metrics) RecordDelete() {
	m.deleteOperations.Add(1)
}

// RecordCompression records bytes saved via compression
func (m *Metrics) RecordCompression(bytesSaved uint64) {
	m.compressionSaves.Add(bytesSaved)
}

// RecordInvalidation increments the invalidation counter
func (m *Metrics) RecordInvalidation() {
	m.invalidationCount.Add(1)
}

// GetSnapshot returns a point-in-time snapshot of the metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	hits := m.cacheHits.Load()
	misses := m.cacheMisses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	getOps := m.getOperations.Load()
	setOps := m.setOperations.Load()

	var avgGetLatency, avgSetLatency time.Duration
	if getOps > 0 {
		avgGetLatency = time.Duration(m.totalGetLatency.Load() / getOps)
	}
	if setOps > 0 {
		avgSetLatency = time.Duration(m.totalSetLatency.Load() / setOps)
	}

	return MetricsSnapshot{
		CacheHits:             hits,
		CacheMisses:           misses,
		CacheErrors:           m.cacheErrors.Load(),
		CacheHitRate:          hitRate,
		GetOperations:         getOps,
		SetOperations:         setOps,
		DeleteOperations:      m.deleteOperations.Load(),
		AvgGetLatency:         avgGetLatency,
		AvgSetLatency:         avgSetLatency,
		CompressionBytesSaved: m.compressionSaves.Load(),
		InvalidationCount:     m.invalidationCount.Load(),
	}
}

// Reset resets all metrics counters
func (m *Metrics) Reset() {
	m.cacheHits.Store(0)
	m.cacheMisses.Store(0)
	m.cacheErrors.Store(0)
	m.getOperations.Store(0)
	m.setOperations.Store(0)
	m.deleteOperations.Store(0)
	m.totalGetLatency.Store(0)
	m.totalSetLatency.Store(0)
	m.compressionSaves.Store(0)
	m.invalidationCount.Store(0)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	CacheHits    uint64
	CacheMisses  uint64
	CacheErrors  uint64
	CacheHitRate float64 // Percentage

	GetOperations    uint64
	SetOperations    uint64
	DeleteOperations uint64

	AvgGetLatency time.Duration
	AvgSetLatency time.Duration

	CompressionBytesSaved uint64
	InvalidationCount     uint64
}
