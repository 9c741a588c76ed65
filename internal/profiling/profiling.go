// Package profiling provides lightweight per-frame scoped CPU timers.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that records elapsed time under name.
// Usage: defer profiling.Track("render.Update")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the current per-frame totals. Call once per frame.
func ResetFrame() {
	mu.Lock()
	for k := range totals {
		delete(totals, k)
	}
	mu.Unlock()
}

// TopN formats the n largest totals of the current frame, e.g.
// "render.Update:2.1ms, render.Scan:0.8ms".
func TopN(n int) string {
	mu.Lock()
	type entry struct {
		name string
		dur  time.Duration
	}
	list := make([]entry, 0, len(totals))
	for k, v := range totals {
		list = append(list, entry{k, v})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}
