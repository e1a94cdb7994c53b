package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const wait = 40 * time.Millisecond

func TestDebouncer_BurstRunsOnlyLast(t *testing.T) {
	d := New(wait)

	var (
		mu    sync.Mutex
		calls []int
	)
	for i := 1; i <= 10; i++ {
		d.Call(func() {
			mu.Lock()
			calls = append(calls, i)
			mu.Unlock()
		})
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(3 * wait)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{10}, calls)
	assert.False(t, d.Pending())
}

func TestDebouncer_SeparatedCallsAllRun(t *testing.T) {
	d := New(wait)
	var count atomic.Int32

	d.Call(func() { count.Add(1) })
	assert.Eventually(t, func() bool { return count.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Call(func() { count.Add(1) })
	assert.Eventually(t, func() bool { return count.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_Cancel(t *testing.T) {
	d := New(wait)
	var count atomic.Int32

	d.Call(func() { count.Add(1) })
	assert.True(t, d.Pending())
	d.Cancel()
	assert.False(t, d.Pending())

	assert.Never(t, func() bool { return count.Load() > 0 }, 3*wait, 5*time.Millisecond)
}

func TestDebouncer_StopRejectsFurtherCalls(t *testing.T) {
	d := New(wait)
	var count atomic.Int32

	d.Call(func() { count.Add(1) })
	d.Stop()
	d.Call(func() { count.Add(1) })

	assert.False(t, d.Pending())
	assert.Never(t, func() bool { return count.Load() > 0 }, 3*wait, 5*time.Millisecond)
}
