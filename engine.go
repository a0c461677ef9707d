// Package keydown tracks which keyboard keys are held and dispatches press,
// held and release callbacks in step with a render loop.
//
// A host feeds physical key events into an Engine (KeyPressed, KeyReleased,
// FocusLost). The application binds handlers on the engine's keys and calls
// Tick once per frame, usually from the function passed to Run:
//
//	e := keydown.NewEngine(nil, nil, nil)
//	e.MustKey("SPACE").Press(func(*keydown.Event) { jump() })
//	e.MustKey("LEFT").Down(func(*keydown.Event) { moveLeft() })
//	e.Run(func(elapsed, now time.Duration) error {
//		e.Tick()
//		return update(elapsed)
//	})
//
// An Engine is not safe for concurrent use. Hosts that receive events on
// other goroutines hand them over with FrameQueue.Post.
package keydown

import "fmt"

type Engine struct {
	reg    *Registry
	router *Router
	loop   *RunLoop
	queue  *FrameQueue
}

// NewEngine creates an engine with one key per entry in codes. A nil codes
// uses DefaultKeyCodeMap, a nil clock uses MonotonicClock and a nil sched
// uses a new FrameQueue, available from Queue.
func NewEngine(codes *KeyCodeMap, clock Clock, sched FrameScheduler) *Engine {
	if codes == nil {
		codes = DefaultKeyCodeMap()
	}
	if clock == nil {
		clock = MonotonicClock()
	}
	e := &Engine{}
	if sched == nil {
		e.queue = NewFrameQueue()
		sched = e.queue
	} else if q, ok := sched.(*FrameQueue); ok {
		e.queue = q
	}
	e.reg = NewRegistry(codes)
	e.router = NewRouter(e.reg)
	e.loop = NewRunLoop(clock, sched)
	return e
}

// Key returns the key named name, or nil if there is none.
func (e *Engine) Key(name string) *Key {
	return e.reg.Key(name)
}

// MustKey is like Key but panics if name is unknown.
func (e *Engine) MustKey(name string) *Key {
	key := e.reg.Key(name)
	if key == nil {
		panic(fmt.Sprintf("keydown: unknown key %q", name))
	}
	return key
}

// Keys returns all key names in sorted order.
func (e *Engine) Keys() []string {
	return e.reg.Names()
}

func (e *Engine) Registry() *Registry { return e.reg }

// Queue returns the engine's FrameQueue, or nil if the engine was created
// with some other FrameScheduler.
func (e *Engine) Queue() *FrameQueue { return e.queue }

func (e *Engine) KeyPressed(code int, mods Modifier) {
	e.router.KeyPressed(code, mods)
}

func (e *Engine) KeyReleased(code int) {
	e.router.KeyReleased(code)
}

func (e *Engine) FocusLost() {
	e.router.FocusLost()
}

// Tick runs the held handler of every key that is currently down.
func (e *Engine) Tick() {
	e.reg.held.ForEach(func(code int) {
		if key, ok := e.reg.KeyForCode(code); ok {
			key.InvokeDown()
		}
	})
}

// Run starts the run loop. fn is called on every frame until Stop is called
// or fn returns an error. fn should normally call Tick.
func (e *Engine) Run(fn FrameFunc) {
	e.loop.Start(fn)
}

func (e *Engine) Stop() {
	e.loop.Stop()
}

func (e *Engine) Running() bool { return e.loop.Running() }

// Err returns the error that stopped the run loop, if any.
func (e *Engine) Err() error { return e.loop.Err() }

func (e *Engine) Loop() *RunLoop { return e.loop }

// HeldKeys returns the names of the keys currently down, oldest first.
func (e *Engine) HeldKeys() []string {
	var names []string
	for code := range e.reg.held.All() {
		if name, ok := e.reg.codes.NameForCode(code); ok {
			names = append(names, name)
		}
	}
	return names
}
