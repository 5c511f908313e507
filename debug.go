package cadence

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// debugEnabled gates all [cadence] stderr reporting. Off by default.
var debugEnabled bool

// SetDebug enables or disables debug reporting on stderr. Debug output
// includes per-frame render stats and warnings about degraded input
// (unknown element types, clamped timing values). Not safe to call
// concurrently with rendering.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// Debug reports whether debug reporting is enabled.
func Debug() bool {
	return debugEnabled
}

// debugf prints a [cadence] prefixed message to stderr when debug is on.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[cadence] "+format+"\n", args...)
}

// warnOnce deduplicates render-loop warnings. A deck with one unknown
// element type would otherwise emit the same line every frame.
var (
	warnMu sync.Mutex
	warned map[string]struct{}
)

// warnOncef prints a [cadence] warning to stderr at most once per key,
// regardless of the debug flag. Safe for concurrent use from export
// workers.
func warnOncef(key, format string, args ...any) {
	warnMu.Lock()
	defer warnMu.Unlock()
	if _, ok := warned[key]; ok {
		return
	}
	if warned == nil {
		warned = make(map[string]struct{})
	}
	warned[key] = struct{}{}
	_, _ = fmt.Fprintf(os.Stderr, "[cadence] warning: "+format+"\n", args...)
}

// frameStats holds per-frame timing and draw metrics.
// Only populated when debugEnabled is true.
type frameStats struct {
	drawTime     time.Duration
	elementCount int
	skippedCount int
	opCount      int
}

// debugLogFrame prints frame stats to stderr.
func debugLogFrame(stats frameStats) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[cadence] draw: %v | elements: %d | skipped: %d | ops: %d\n",
		stats.drawTime, stats.elementCount, stats.skippedCount, stats.opCount)
}
