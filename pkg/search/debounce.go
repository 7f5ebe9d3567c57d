package search

import (
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultQuietPeriod is how long input has to stay unchanged before it is
// committed as a search term.
const DefaultQuietPeriod = 300 * time.Millisecond

// Normalize turns raw input into the term used for matching.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Debouncer holds at most one pending value. Every Push replaces the pending
// value and restarts the quiet period, so emit only ever sees the latest
// input of a burst.
type Debouncer struct {
	mu         sync.Mutex
	quiet      time.Duration
	clock      clock.Clock
	emit       func(string)
	timer      *clock.Timer
	pending    string
	hasPending bool
	generation uint64
	stopped    bool
}

// NewDebouncer creates a debouncer. A nil clock uses wall time.
func NewDebouncer(quiet time.Duration, clk clock.Clock, emit func(string)) *Debouncer {
	if clk == nil {
		clk = clock.New()
	}
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{
		quiet: quiet,
		clock: clk,
		emit:  emit,
	}
}

func (d *Debouncer) Push(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.pending = value
	d.hasPending = true
	d.timer = d.clock.AfterFunc(d.quiet, func() {
		d.fire(gen)
	})
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// a timer that lost the race against Push/Stop must not emit
	if d.stopped || gen != d.generation || !d.hasPending {
		d.mu.Unlock()
		return
	}
	value := d.take()
	d.mu.Unlock()
	d.emit(value)
}

// take must be called with mu held.
func (d *Debouncer) take() string {
	value := d.pending
	d.pending = ""
	d.hasPending = false
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return value
}

// Flush emits the pending value right away, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || !d.hasPending {
		d.mu.Unlock()
		return
	}
	value := d.take()
	d.mu.Unlock()
	d.emit(value)
}

// Pending reports the value waiting for the quiet period to pass.
func (d *Debouncer) Pending() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending, d.hasPending
}

// Cancel drops the pending value without emitting it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
}

// Stop drops any pending value. Later pushes are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
	d.stopped = true
}
