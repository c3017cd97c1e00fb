package perf

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is the default capacity of the sample ring.
const DefaultRingSize = 4096

// Kind distinguishes HTTP request samples from database query samples.
type Kind uint8

const (
	KindRequest Kind = iota
	KindQuery
)

// Sample is a single timing measurement.
type Sample struct {
	Kind   Kind
	Name   string // "GET /admin" or a store operation like "ExecContext"
	Status int    // HTTP status, 0 for queries
	Millis float64
	At     time.Time
}

// Collector keeps recent samples in a fixed-size ring. Writes never block
// and overwrite the oldest sample once the ring is full; all aggregation
// happens on read.
type Collector struct {
	mu      sync.Mutex
	samples []Sample
	pos     int
	total   int64
}

// NewCollector creates a collector holding up to size samples.
// PRE: size > 0, otherwise DefaultRingSize is used
// POST: Returns a ready-to-use collector
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{samples: make([]Sample, size)}
}

// Record stores a sample, overwriting the oldest once the ring is full.
func (c *Collector) Record(s Sample) {
	c.mu.Lock()
	c.samples[c.pos] = s
	c.pos = (c.pos + 1) % len(c.samples)
	c.mu.Unlock()
	atomic.AddInt64(&c.total, 1)
}

// TotalRecorded returns the number of samples ever recorded, including
// overwritten ones.
func (c *Collector) TotalRecorded() int64 {
	return atomic.LoadInt64(&c.total)
}

// NameStat aggregates the samples sharing one name.
type NameStat struct {
	Name    string
	Count   int
	AvgMs   float64
	MaxMs   float64
	TotalMs float64
}

// Snapshot holds aggregates computed from the ring on demand.
type Snapshot struct {
	TotalRecorded  int64
	RequestP50Ms   float64
	RequestP95Ms   float64
	SlowestPaths   []NameStat
	SlowestQueries []NameStat
}

// Snapshot aggregates samples recorded at or after since. It sorts, so it
// belongs on a dashboard request, not a hot path.
func (c *Collector) Snapshot(since time.Time, topN int) Snapshot {
	c.mu.Lock()
	buf := make([]Sample, len(c.samples))
	copy(buf, c.samples)
	c.mu.Unlock()

	var requestMillis []float64
	requests := make(map[string]*NameStat)
	queries := make(map[string]*NameStat)

	for _, s := range buf {
		if s.At.IsZero() || s.At.Before(since) {
			continue
		}
		stats := queries
		if s.Kind == KindRequest {
			stats = requests
			requestMillis = append(requestMillis, s.Millis)
		}
		st, ok := stats[s.Name]
		if !ok {
			st = &NameStat{Name: s.Name}
			stats[s.Name] = st
		}
		st.Count++
		st.TotalMs += s.Millis
		if s.Millis > st.MaxMs {
			st.MaxMs = s.Millis
		}
	}

	snap := Snapshot{
		TotalRecorded:  c.TotalRecorded(),
		SlowestPaths:   topByAvg(requests, topN),
		SlowestQueries: topByAvg(queries, topN),
	}
	if len(requestMillis) > 0 {
		sort.Float64s(requestMillis)
		snap.RequestP50Ms = percentile(requestMillis, 50)
		snap.RequestP95Ms = percentile(requestMillis, 95)
	}
	return snap
}

// percentile interpolates the p-th percentile from a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper || upper >= len(sorted) {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

func topByAvg(stats map[string]*NameStat, n int) []NameStat {
	list := make([]NameStat, 0, len(stats))
	for _, st := range stats {
		st.AvgMs = st.TotalMs / float64(st.Count)
		list = append(list, *st)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].AvgMs > list[j].AvgMs })
	if len(list) > n {
		list = list[:n]
	}
	return list
}
