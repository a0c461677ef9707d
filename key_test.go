package keydown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeysAreUnbound(t *testing.T) {
	reg := NewRegistry(DefaultKeyCodeMap())
	for _, name := range reg.Names() {
		k := reg.Key(name)
		require.NotNil(t, k, name)
		assert.False(t, k.IsDown(), name)
		assert.Nil(t, k.pressHandler, name)
		assert.Nil(t, k.downHandler, name)
		assert.Nil(t, k.upHandler, name)
		assert.Nil(t, k.LastPress(), name)
		assert.NotPanics(t, func() {
			k.InvokePress(nil)
			k.InvokeDown()
			k.InvokeUp(nil)
		})
	}
}

func TestKeyBindReplaces(t *testing.T) {
	k := newKey("A", 65, &HeldSet{})
	var first, second int
	k.Press(func(*Event) { first++ })
	k.Press(func(*Event) { second++ })
	k.InvokePress(&Event{Code: 65})
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestKeyNilBinderInvokes(t *testing.T) {
	k := newKey("A", 65, &HeldSet{})
	var downs, ups, presses int
	var got *Event
	k.Down(func(ev *Event) { downs++; got = ev })
	k.Up(func(*Event) { ups++ })
	k.Press(func(*Event) { presses++ })

	ev := &Event{Kind: EventPress, Code: 65, Mods: ModShift}
	k.InvokePress(ev)
	k.Down(nil)
	k.Up(nil)
	k.Press(nil)

	assert.Equal(t, 1, downs)
	assert.Same(t, ev, got)
	assert.Equal(t, 1, ups)
	assert.Equal(t, 2, presses)
}

func TestKeyUnbind(t *testing.T) {
	k := newKey("A", 65, &HeldSet{})
	var n int
	h := func(*Event) { n++ }
	k.Press(h)
	k.Down(h)
	k.Up(h)
	k.UnbindPress()
	k.UnbindDown()
	k.UnbindUp()
	k.InvokePress(nil)
	k.InvokeDown()
	k.InvokeUp(nil)
	assert.Zero(t, n)
}

func TestKeyInvokeDownUsesCachedPress(t *testing.T) {
	k := newKey("A", 65, &HeldSet{})
	var got []*Event
	k.Down(func(ev *Event) { got = append(got, ev) })
	k.InvokeDown()
	ev := &Event{Kind: EventPress, Code: 65, Mods: ModCtrl}
	k.InvokePress(ev)
	k.InvokeDown()
	require.Len(t, got, 2)
	assert.Nil(t, got[0])
	assert.Same(t, ev, got[1])
}

func TestKeyHandlerPanicPropagates(t *testing.T) {
	k := newKey("A", 65, &HeldSet{})
	k.Down(func(*Event) { panic("boom") })
	assert.PanicsWithValue(t, "boom", k.InvokeDown)
}

func TestKeyIsHeld(t *testing.T) {
	hs := &HeldSet{}
	k := newKey("A", 65, hs)
	other := &HeldSet{}
	hs.Insert(65)
	assert.True(t, k.IsDown())
	assert.True(t, k.IsHeld(hs))
	assert.False(t, k.IsHeld(other))
}

func TestModifierString(t *testing.T) {
	assert.Equal(t, "", Modifier(0).String())
	assert.Equal(t, "C-S-", (ModCtrl | ModShift).String())
	assert.True(t, ModMeta.repeatsPress())
	assert.False(t, ModAlt.repeatsPress())
	assert.Equal(t, "focus-lost", EventFocusLost.String())
}
