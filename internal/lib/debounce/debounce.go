// Package debounce откладывает вызов функции до окончания периода тишины.
//
// Каждый новый Call отменяет предыдущий отложенный вызов, поэтому из серии
// быстрых вызовов выполняется только последний.
package debounce

import (
	"sync"
	"time"
)

// Debouncer откладывает вызов на wait после последнего Call.
type Debouncer struct {
	mu      sync.Mutex
	wait    time.Duration
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// New создаёт Debouncer с периодом тишины wait.
func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Call планирует fn через wait, заменяя ранее запланированный вызов.
// После Stop вызовы игнорируются.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// таймер мог сработать одновременно с новым Call или Cancel
		current := gen == d.gen && !d.stopped
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			fn()
		}
	})
}

// Cancel отменяет запланированный вызов, если он ещё не начался.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Pending сообщает, ждёт ли вызов своего времени.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop отменяет запланированный вызов и запрещает новые.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
