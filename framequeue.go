package keydown

import (
	"context"
	"time"
)

const postedEventCapacity = 1024

// FrameQueue is a FrameScheduler driven by explicit RunFrame calls from the
// loop goroutine. Other goroutines hand work to that goroutine with Post.
type FrameQueue struct {
	events  chan func()
	pending []func()
	running []func()
	next    FrameHandle
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		events: make(chan func(), postedEventCapacity),
	}
}

// RequestFrame queues fn for the next RunFrame call.
func (q *FrameQueue) RequestFrame(fn func()) FrameHandle {
	q.pending = append(q.pending, fn)
	q.next++
	return q.next
}

// Post queues fn to run on the loop goroutine at the start of the next
// frame. It blocks while the queue is full. Safe for concurrent use.
func (q *FrameQueue) Post(fn func()) {
	q.events <- fn
}

// TryPost is like Post but drops fn and returns false if the queue is full.
func (q *FrameQueue) TryPost(fn func()) bool {
	select {
	case q.events <- fn:
		return true
	default:
		return false
	}
}

func (q *FrameQueue) drainEvents() {
	for {
		select {
		case ev := <-q.events:
			ev()
		default:
			return
		}
	}
}

// RunFrame runs posted events, then every frame callback requested before
// the call. Callbacks requested while the frame runs wait for the next call.
// It returns the number of frame callbacks run.
func (q *FrameQueue) RunFrame() int {
	q.drainEvents()
	q.running, q.pending = q.pending, q.running[:0]
	n := len(q.running)
	for i, fn := range q.running {
		q.running[i] = nil
		fn()
	}
	q.running = q.running[:0]
	return n
}

// Pending returns the number of frame callbacks waiting for RunFrame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Pump calls RunFrame every interval until ctx is done.
func (q *FrameQueue) Pump(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			q.RunFrame()
		}
	}
}
