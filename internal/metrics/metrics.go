// Package metrics collects matching and cache counters for observability.
package metrics

import (
	"sync"
	"time"
)

// Metrics accumulates timing and counter data for a provider instance.
// Counters are monotonic; Reset exists for test isolation only.
// All methods are safe for concurrent use and tolerate a nil receiver,
// so components can run without a metrics sink attached.
type Metrics struct {
	mu           sync.Mutex
	searchTime   time.Duration
	parseTime    time.Duration
	cacheHits    uint64
	cacheMisses  uint64
	fuzzyMatches uint64
}

// Snapshot is a read-only copy of the counters at a point in time.
type Snapshot struct {
	SearchTime   time.Duration `json:"search_time"`
	ParseTime    time.Duration `json:"parse_time"`
	CacheHits    uint64        `json:"cache_hits"`
	CacheMisses  uint64        `json:"cache_misses"`
	FuzzyMatches uint64        `json:"fuzzy_matches"`
}

// New creates an empty Metrics holder.
func New() *Metrics {
	return &Metrics{}
}

// AddSearchTime accumulates time spent resolving search pages.
func (m *Metrics) AddSearchTime(d time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.searchTime += d
	m.mu.Unlock()
}

// AddParseTime accumulates time spent extracting torrent metadata.
func (m *Metrics) AddParseTime(d time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.parseTime += d
	m.mu.Unlock()
}

// RecordCacheHit increments the cache hit counter.
func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.cacheHits++
	m.mu.Unlock()
}

// RecordCacheMiss increments the cache miss counter.
func (m *Metrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.cacheMisses++
	m.mu.Unlock()
}

// RecordFuzzyMatch increments the matcher invocation counter.
// One increment per Match call, regardless of which strategy won.
func (m *Metrics) RecordFuzzyMatch() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.fuzzyMatches++
	m.mu.Unlock()
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		SearchTime:   m.searchTime,
		ParseTime:    m.parseTime,
		CacheHits:    m.cacheHits,
		CacheMisses:  m.cacheMisses,
		FuzzyMatches: m.fuzzyMatches,
	}
}

// Reset zeroes all counters. Test-only escape hatch.
func (m *Metrics) Reset() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchTime = 0
	m.parseTime = 0
	m.cacheHits = 0
	m.cacheMisses = 0
	m.fuzzyMatches = 0
}
