package keydown

import "time"

// Clock returns a monotonic timestamp.
type Clock interface {
	Now() time.Duration
}

type ClockFunc func() time.Duration

func (f ClockFunc) Now() time.Duration { return f() }

// MonotonicClock returns a Clock measuring time since its creation.
func MonotonicClock() Clock {
	start := time.Now()
	return ClockFunc(func() time.Duration {
		return time.Since(start)
	})
}

// FrameHandle identifies a frame request.
type FrameHandle uint64

// FrameScheduler runs a callback once, on a future frame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
}

// FrameFunc is called once per frame with the time since the previous frame
// and the current clock reading. A non-nil error stops the loop.
type FrameFunc func(elapsed, now time.Duration) error

// RunLoop calls a FrameFunc on every frame until stopped.
//
// Each frame requests its successor before it calls the FrameFunc. Stop
// called from inside the FrameFunc therefore leaves one request pending; that
// request sees the stopped state on entry and returns without calling the
// FrameFunc or requesting another frame.
type RunLoop struct {
	clock Clock
	sched FrameScheduler

	fn      FrameFunc
	running bool

	// generation invalidates frame requests made by an earlier Start.
	generation uint64

	prev   time.Duration
	handle FrameHandle
	frames uint64
	err    error
}

func NewRunLoop(clock Clock, sched FrameScheduler) *RunLoop {
	return &RunLoop{
		clock: clock,
		sched: sched,
	}
}

// Start begins calling fn on each scheduled frame. The first call happens on
// the next frame, not inside Start. Starting a running loop only replaces fn.
func (l *RunLoop) Start(fn FrameFunc) {
	l.fn = fn
	if l.running {
		return
	}
	l.running = true
	l.err = nil
	l.generation++
	l.prev = l.clock.Now()
	l.schedule(l.generation)
}

// Stop halts the loop. Stopping a stopped loop does nothing.
func (l *RunLoop) Stop() {
	l.running = false
}

func (l *RunLoop) schedule(generation uint64) {
	l.handle = l.sched.RequestFrame(func() {
		l.frame(generation)
	})
}

func (l *RunLoop) frame(generation uint64) {
	if !l.running || generation != l.generation {
		return
	}
	now := l.clock.Now()
	elapsed := now - l.prev
	l.schedule(generation)
	l.frames++
	err := l.fn(elapsed, now)
	l.prev = now
	if err != nil {
		logger.Error("frame callback failed, stopping run loop", "frame", l.frames, "error", err)
		l.err = err
		l.running = false
	}
}

func (l *RunLoop) Running() bool { return l.running }

// Frames returns the number of frames that called the FrameFunc.
func (l *RunLoop) Frames() uint64 { return l.frames }

// Err returns the error that stopped the loop, if any.
func (l *RunLoop) Err() error { return l.err }

// Pending returns the handle of the most recent frame request.
func (l *RunLoop) Pending() FrameHandle { return l.handle }
