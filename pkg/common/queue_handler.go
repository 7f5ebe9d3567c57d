package common

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// QueueProcessor is a function that processes a batch of items from the queue.
type QueueProcessor[V any] func(items []V)

// QueueHandler collects items and hands them to the processor in chunks of at
// most chunkSize, once per interval. Close processes what is left.
type QueueHandler[V any] struct {
	mu        sync.Mutex
	queue     []V
	processor QueueProcessor[V]
	chunkSize int
	ticker    *clock.Ticker
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewQueueHandler creates a new QueueHandler. A nil clock uses the real one.
func NewQueueHandler[V any](processor QueueProcessor[V], chunkSize int, interval time.Duration, clk clock.Clock) *QueueHandler[V] {
	if clk == nil {
		clk = clock.New()
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	q := &QueueHandler[V]{
		queue:     make([]V, 0),
		processor: processor,
		chunkSize: chunkSize,
		ticker:    clk.Ticker(interval),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	go q.processQueue()
	return q
}

// Add adds items to the queue. Items added after Close are dropped.
func (h *QueueHandler[V]) Add(item ...V) {
	select {
	case <-h.done:
		return
	default:
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = append(h.queue, item...)
}

func (h *QueueHandler[V]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}

func (h *QueueHandler[V]) next() []V {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.queue) == 0 {
		return nil
	}
	items := h.queue[:min(h.chunkSize, len(h.queue))]
	h.queue = h.queue[len(items):]
	return items
}

func (h *QueueHandler[V]) drain() {
	for items := h.next(); items != nil; items = h.next() {
		h.processor(items)
	}
}

func (h *QueueHandler[V]) processQueue() {
	defer close(h.stopped)
	for {
		select {
		case <-h.ticker.C:
			h.drain()
		case <-h.done:
			h.ticker.Stop()
			h.drain()
			return
		}
	}
}

// Close stops the background loop after processing the remaining items.
func (h *QueueHandler[V]) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
	<-h.stopped
}
