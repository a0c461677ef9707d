package keydown

import "fmt"

type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
	// EventFocusLost marks a release synthesized because the window lost
	// focus while the key was held.
	EventFocusLost
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventFocusLost:
		return "focus-lost"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Modifier is a bit set of modifier keys held during a key event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// repeatsPress reports whether a press carrying m defeats the new-press check
// on the following press of the same key. Browsers and some window systems
// swallow key releases while one of these modifiers stays down.
func (m Modifier) repeatsPress() bool {
	return m&(ModCtrl|ModShift|ModMeta) != 0
}

func (m Modifier) String() string {
	s := ""
	if m.Has(ModCtrl) {
		s += "C-"
	}
	if m.Has(ModMeta) {
		s += "s-"
	}
	if m.Has(ModAlt) {
		s += "M-"
	}
	if m.Has(ModShift) {
		s += "S-"
	}
	return s
}

// Event is the raw key event handed to key handlers.
type Event struct {
	Kind EventKind
	Code int
	Mods Modifier
}

// Handler is a key callback. The event is nil when a held handler runs for
// a key that has never been pressed.
type Handler func(ev *Event)

// Key holds the handlers bound to one symbolic key. Keys are created by a
// Registry and live as long as it does.
type Key struct {
	name string
	code int
	held *HeldSet

	pressHandler Handler
	downHandler  Handler
	upHandler    Handler

	// lastPress is the most recent press event delivered to this key.
	lastPress *Event
}

func newKey(name string, code int, held *HeldSet) *Key {
	return &Key{
		name: name,
		code: code,
		held: held,
	}
}

func (k *Key) Name() string { return k.name }
func (k *Key) Code() int    { return k.code }

// LastPress returns the cached press event, or nil if the key has not been
// pressed yet.
func (k *Key) LastPress() *Event { return k.lastPress }

// Down binds h to run on every tick while the key is held. A nil h runs the
// currently bound held handler instead.
func (k *Key) Down(h Handler) {
	if h == nil {
		k.InvokeDown()
		return
	}
	k.downHandler = h
}

// Up binds h to run when the key is released. A nil h runs the currently
// bound release handler with a nil event.
func (k *Key) Up(h Handler) {
	if h == nil {
		k.InvokeUp(nil)
		return
	}
	k.upHandler = h
}

// Press binds h to run once per press. It does not fire again until the key
// has been released. A nil h runs the currently bound press handler with the
// cached press event.
func (k *Key) Press(h Handler) {
	if h == nil {
		call(k.pressHandler, k.lastPress)
		return
	}
	k.pressHandler = h
}

func (k *Key) UnbindDown()  { k.downHandler = nil }
func (k *Key) UnbindUp()    { k.upHandler = nil }
func (k *Key) UnbindPress() { k.pressHandler = nil }

// InvokePress caches ev and runs the press handler with it.
func (k *Key) InvokePress(ev *Event) {
	k.lastPress = ev
	call(k.pressHandler, ev)
}

// InvokeDown runs the held handler with the cached press event.
func (k *Key) InvokeDown() {
	call(k.downHandler, k.lastPress)
}

func (k *Key) InvokeUp(ev *Event) {
	call(k.upHandler, ev)
}

func (k *Key) IsHeld(hs *HeldSet) bool {
	return hs.Contains(k.code)
}

// IsDown reports whether the key is in the held set of its registry.
func (k *Key) IsDown() bool {
	return k.held != nil && k.IsHeld(k.held)
}

func (k *Key) String() string {
	return fmt.Sprintf("%s(%d)", k.name, k.code)
}

func call(h Handler, ev *Event) {
	if h != nil {
		h(ev)
	}
}
