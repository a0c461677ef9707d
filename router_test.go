package keydown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder binds all three handlers of a key and logs their calls.
type recorder struct {
	calls  []string
	events []*Event
}

func record(k *Key) *recorder {
	rec := &recorder{}
	k.Press(func(ev *Event) { rec.add("press", ev) })
	k.Down(func(ev *Event) { rec.add("down", ev) })
	k.Up(func(ev *Event) { rec.add("up", ev) })
	return rec
}

func (rec *recorder) add(what string, ev *Event) {
	rec.calls = append(rec.calls, what)
	rec.events = append(rec.events, ev)
}

func (rec *recorder) count(what string) int {
	n := 0
	for _, c := range rec.calls {
		if c == what {
			n++
		}
	}
	return n
}

func newTestRouter() (*Registry, *Router) {
	reg := NewRegistry(DefaultKeyCodeMap())
	return reg, NewRouter(reg)
}

func TestRouterPressRelease(t *testing.T) {
	reg, r := newTestRouter()
	rec := record(reg.Key("SPACE"))

	r.KeyPressed(32, 0)
	assert.True(t, reg.Key("SPACE").IsDown())
	r.KeyReleased(32)
	assert.False(t, reg.Key("SPACE").IsDown())

	assert.Equal(t, []string{"press", "up"}, rec.calls)
	assert.Equal(t, EventPress, rec.events[0].Kind)
	assert.Equal(t, 32, rec.events[0].Code)
	assert.Equal(t, EventRelease, rec.events[1].Kind)
}

func TestRouterRepeatIsNoop(t *testing.T) {
	reg, r := newTestRouter()
	rec := record(reg.Key("A"))

	r.KeyPressed(65, 0)
	r.KeyPressed(65, 0)
	r.KeyPressed(65, ModAlt)
	assert.Equal(t, 1, rec.count("press"))
	assert.Equal(t, 1, reg.Held().Len())
}

func TestRouterModifierRepeat(t *testing.T) {
	reg, r := newTestRouter()
	rec := record(reg.Key("Z"))

	r.KeyPressed(90, ModCtrl)
	r.KeyPressed(90, ModCtrl)
	assert.Equal(t, 2, rec.count("press"))
	assert.Equal(t, []int{90}, reg.Held().Codes())

	r.KeyReleased(90)
	assert.Equal(t, 1, rec.count("up"))
}

func TestRouterModifierRepeatUsesPreviousPress(t *testing.T) {
	reg, r := newTestRouter()
	rec := record(reg.Key("Z"))

	// the first press carries no modifier, so the repeat with Ctrl is
	// still deduplicated
	r.KeyPressed(90, 0)
	r.KeyPressed(90, ModCtrl)
	assert.Equal(t, 1, rec.count("press"))

	r.KeyReleased(90)
	r.KeyPressed(90, ModShift)
	r.KeyPressed(90, 0)
	assert.Equal(t, 3, rec.count("press"))
	r.KeyPressed(90, 0)
	assert.Equal(t, 3, rec.count("press"))
}

func TestRouterUnmappedKeysIgnored(t *testing.T) {
	reg, r := newTestRouter()
	r.KeyPressed(1000, ModCtrl)
	r.KeyReleased(1000)
	assert.Zero(t, reg.Held().Len())
}

func TestRouterReleaseOfUnheldKey(t *testing.T) {
	reg, r := newTestRouter()
	rec := record(reg.Key("A"))
	r.KeyReleased(65)
	assert.Empty(t, rec.calls)
}

func TestRouterFocusLost(t *testing.T) {
	reg, r := newTestRouter()
	left := record(reg.Key("LEFT"))
	space := record(reg.Key("SPACE"))
	idle := record(reg.Key("Q"))

	r.KeyPressed(37, 0)
	r.KeyPressed(32, 0)
	r.FocusLost()

	assert.Equal(t, 1, left.count("up"))
	assert.Equal(t, 1, space.count("up"))
	assert.Empty(t, idle.calls)
	require.Len(t, left.events, 2)
	assert.Equal(t, EventFocusLost, left.events[1].Kind)
	assert.Zero(t, reg.Held().Len())
	assert.False(t, reg.Key("LEFT").IsDown())
	assert.False(t, reg.Key("SPACE").IsDown())

	// the keyup that arrives after refocus is ignored
	r.KeyReleased(37)
	assert.Equal(t, 1, left.count("up"))
}

func TestRouterRebindWhileHeld(t *testing.T) {
	reg, r := newTestRouter()
	k := reg.Key("A")
	var first, second int
	k.Press(func(*Event) { first++ })
	r.KeyPressed(65, 0)
	k.Press(func(*Event) { second++ })
	r.KeyPressed(65, 0)
	assert.Equal(t, 1, first)
	assert.Zero(t, second)

	r.KeyReleased(65)
	r.KeyPressed(65, 0)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
