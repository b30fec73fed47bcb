package leaktest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf calls so a failing check can be asserted on
type recordingTB struct {
	testing.TB
	mu     sync.Mutex
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...interface{}) {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
}

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
		}()
		wg.Wait()
	})
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check()
	close(done)

	assert.True(t, rec.failed)
}

func TestMemoryChecker_SmallAllocation(t *testing.T) {
	checker := NewMemoryChecker(t)
	_ = make([]byte, 1024)
	checker.Check(1.0)
}
