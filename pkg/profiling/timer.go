// Package profiling times named operations and summarizes them on exit.
// Spans may be started from any goroutine; they are aggregated by name.
package profiling

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// Stopper ends a timed span.
type Stopper interface {
	Stop()
}

type stat struct {
	count int
	total time.Duration
	max   time.Duration
}

// Profiler aggregates span durations by name.
type Profiler struct {
	mu      sync.Mutex
	enabled bool
	started time.Time
	stats   map[string]*stat
}

var defaultProfiler = &Profiler{}

// Enable turns on the global profiler.
func Enable() {
	defaultProfiler.Enable()
}

// Enabled reports whether the global profiler is recording.
func Enabled() bool {
	return defaultProfiler.Enabled()
}

// Start begins a span on the global profiler; Stop it, usually via defer.
func Start(name string) Stopper {
	return defaultProfiler.Start(name)
}

// Summarize writes the global profiler's summary.
func Summarize(w io.Writer) {
	defaultProfiler.Summarize(w)
}

func (p *Profiler) Enable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		return
	}
	p.enabled = true
	p.started = time.Now()
	p.stats = make(map[string]*stat)
}

func (p *Profiler) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *Profiler) Start(name string) Stopper {
	if !p.Enabled() {
		return noopStopper{}
	}
	return &span{name: name, start: time.Now(), profiler: p}
}

func (p *Profiler) record(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	s, ok := p.stats[name]
	if !ok {
		s = &stat{}
		p.stats[name] = s
	}
	s.count++
	s.total += d
	if d > s.max {
		s.max = d
	}
}

// Summarize writes one line per span name, slowest total first.
func (p *Profiler) Summarize(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	names := make([]string, 0, len(p.stats))
	for name := range p.stats {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := p.stats[names[i]], p.stats[names[j]]
		if a.total != b.total {
			return a.total > b.total
		}
		return names[i] < names[j]
	})

	elapsed := time.Since(p.started)
	fmt.Fprintf(w, "\n--- Timing (%v) ---\n", elapsed.Round(time.Millisecond))
	for _, name := range names {
		s := p.stats[name]
		fmt.Fprintf(w, "- %s: %v total, %d call(s), max %v\n",
			name, s.total.Round(100*time.Microsecond), s.count, s.max.Round(100*time.Microsecond))
	}
}

type span struct {
	name     string
	start    time.Time
	once     sync.Once
	profiler *Profiler
}

// Stop records the span; later calls are ignored.
func (s *span) Stop() {
	s.once.Do(func() {
		s.profiler.record(s.name, time.Since(s.start))
	})
}

type noopStopper struct{}

func (noopStopper) Stop() {}
