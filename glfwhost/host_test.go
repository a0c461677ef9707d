package glfwhost

import (
	"io"
	"log/slog"
	"testing"

	"github.com/cellux/keydown"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rawApp struct {
	actions []glfw.Action
}

func (a *rawApp) Init() error     { return nil }
func (a *rawApp) IsRunning() bool { return true }
func (a *rawApp) Render() error   { return nil }
func (a *rawApp) Close() error    { return nil }

func (a *rawApp) OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	a.actions = append(a.actions, action)
}

func newTestHost() (*host, *keydown.Engine, *rawApp) {
	e := keydown.NewEngine(nil, nil, nil)
	app := &rawApp{}
	return &host{
		engine: e,
		app:    app,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, e, app
}

func TestHostKeyEvents(t *testing.T) {
	h, e, app := newTestHost()
	presses := 0
	e.MustKey("Q").Press(func(*keydown.Event) { presses++ })

	h.onKey(nil, glfw.KeyQ, 0, glfw.Press, 0)
	h.onKey(nil, glfw.KeyQ, 0, glfw.Repeat, 0)
	h.onKey(nil, glfw.KeyQ, 0, glfw.Repeat, 0)
	assert.True(t, e.MustKey("Q").IsDown())
	assert.Equal(t, 1, presses)

	h.onKey(nil, glfw.KeyQ, 0, glfw.Release, 0)
	assert.False(t, e.MustKey("Q").IsDown())
	assert.Len(t, app.actions, 4, "raw receiver sees the repeats")
}

func TestHostCtrlRepeat(t *testing.T) {
	h, e, _ := newTestHost()
	undos := 0
	e.MustKey("Z").Press(func(ev *keydown.Event) {
		require.True(t, ev.Mods.Has(keydown.ModCtrl))
		undos++
	})
	h.onKey(nil, glfw.KeyZ, 0, glfw.Press, glfw.ModControl)
	h.onKey(nil, glfw.KeyZ, 0, glfw.Press, glfw.ModControl)
	assert.Equal(t, 2, undos)
}

func TestHostFocusLoss(t *testing.T) {
	h, e, _ := newTestHost()
	h.onKey(nil, glfw.KeyLeft, 0, glfw.Press, 0)
	h.onKey(nil, glfw.KeySpace, 0, glfw.Press, 0)
	h.onFocus(nil, true)
	assert.Equal(t, []string{"LEFT", "SPACE"}, e.HeldKeys())
	h.onFocus(nil, false)
	assert.Empty(t, e.HeldKeys())
}

func TestHostUnmappedKey(t *testing.T) {
	h, e, app := newTestHost()
	h.onKey(nil, glfw.KeyKP5, 0, glfw.Press, 0)
	assert.Empty(t, e.HeldKeys())
	assert.Len(t, app.actions, 1)
}
