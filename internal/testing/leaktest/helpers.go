// Package leaktest detects goroutines left behind by pools, hubs and
// publishers that were not shut down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
const DefaultSettleTimeout = 2 * time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker records a goroutine baseline and later verifies the count
// returned to it
type GoroutineChecker struct {
	before  int
	timeout time.Duration
	t       testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Let goroutines from earlier tests wind down before taking the baseline
	settle(0, 50*time.Millisecond)

	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		timeout: DefaultSettleTimeout,
		t:       t,
	}
}

// WithTimeout changes how long Check waits before reporting a leak
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check fails the test if, after waiting up to the timeout, more than
// tolerance goroutines remain above the baseline
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, g.timeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires the goroutine count to return to
// its baseline
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if n := settle(target, timeout); n > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", n, target)
	}
}

// settle polls until the goroutine count drops to target or the timeout
// passes, and returns the last count seen
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
