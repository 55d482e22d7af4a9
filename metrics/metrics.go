package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Metrics records one algorithm run: a wall-clock window and a set of
// named operation counters.
//
// A Metrics value belongs to exactly one run and is not safe for
// concurrent use; solvers create one per invocation and return it
// inside the run's Result.
type Metrics struct {
	start    time.Time
	end      time.Time
	running  bool
	counters map[string]int
}

// New returns an empty Metrics record with no counters and no window.
func New() *Metrics {
	return &Metrics{counters: make(map[string]int)}
}

// Start opens the measurement window at the current instant.
func (m *Metrics) Start() {
	m.start = time.Now()
	m.running = true
}

// Stop closes the measurement window at the current instant.
func (m *Metrics) Stop() {
	m.end = time.Now()
	m.running = false
}

// Inc adds one to the named counter, creating it at zero first.
func (m *Metrics) Inc(name string) {
	m.counters[name]++
}

// Add adds delta to the named counter, creating it at zero first.
func (m *Metrics) Add(name string, delta int) {
	m.counters[name] += delta
}

// Count returns the named counter's value, or zero if it was never touched.
func (m *Metrics) Count(name string) int {
	return m.counters[name]
}

// Elapsed returns the window length. While the window is still open it
// measures from Start to now; before Start it is zero.
func (m *Metrics) Elapsed() time.Duration {
	if m.start.IsZero() {
		return 0
	}
	if m.running {
		return time.Since(m.start)
	}

	return m.end.Sub(m.start)
}

// Counters returns a copy of the counter map, safe for the caller to keep.
func (m *Metrics) Counters() map[string]int {
	out := make(map[string]int, len(m.counters))
	for name, v := range m.counters {
		out[name] = v
	}

	return out
}

// Report renders the window and every counter, counters sorted by name.
func (m *Metrics) Report() string {
	elapsed := m.Elapsed()
	ns := float64(elapsed.Nanoseconds())

	var sb strings.Builder
	sb.WriteString("=== Algorithm Metrics ===\n")
	fmt.Fprintf(&sb, "Execution Time: %.3f ms (%.0f ns)\n", ns/1e6, ns)

	names := make([]string, 0, len(m.counters))
	for name := range m.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "%s: %d\n", name, m.counters[name])
	}

	return sb.String()
}
