package leaktest

import (
	"runtime"
	"testing"
	"time"

	"go.uber.org/goleak"
)

// GoroutineChecker reports goroutines started after it was created that are
// still running when Check is called
type GoroutineChecker struct {
	baseline goleak.Option
	t        testing.TB
}

// NewGoroutineChecker snapshots the goroutines that are already running
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{
		baseline: goleak.IgnoreCurrent(),
		t:        t,
	}
}

// Check fails the test if new goroutines are still alive. goleak retries
// until the goroutines exit or its deadline passes.
func (g *GoroutineChecker) Check(opts ...goleak.Option) {
	g.t.Helper()
	if err := goleak.Find(append([]goleak.Option{g.baseline}, opts...)...); err != nil {
		g.t.Errorf("goroutine leak: %v", err)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check()
}

// MemoryChecker helps detect memory leaks
type MemoryChecker struct {
	before runtime.MemStats
	t      testing.TB
}

// NewMemoryChecker creates a new checker and records current memory stats
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()

	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &MemoryChecker{before: m, t: t}
}

// Check verifies heap growth stays under maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	runtime.GC()
	time.Sleep(50 * time.Millisecond)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	beforeMB := float64(m.before.Alloc) / 1024 / 1024
	afterMB := float64(after.Alloc) / 1024 / 1024
	if growth := afterMB - beforeMB; growth > maxGrowthMB {
		m.t.Errorf("Potential memory leak: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			beforeMB, afterMB, growth, maxGrowthMB)
	}
}
