package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf without failing the outer test
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	NewGoroutineChecker(t).Check(0)
}

func TestGoroutineChecker_WaitsForSlowExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(100 * time.Millisecond)
	}()

	// Still running at the time of the call; Check must wait it out
	checker.Check(0)
}

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec).WithTimeout(50 * time.Millisecond)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(0)
	assert.True(t, rec.failed)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec).WithTimeout(50 * time.Millisecond)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(2)
	assert.False(t, rec.failed)
}

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestWaitForGoroutines_Success(t *testing.T) {
	before := runtime.NumGoroutine()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
		}()
	}
	wg.Wait()

	WaitForGoroutines(t, before, time.Second)
}
