// Package glfwhost connects a GLFW window to a keydown.Engine: it delivers
// key and focus events, supplies the clock, and runs the frame queue once per
// rendered frame.
package glfwhost

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/cellux/keydown"
	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const defaultFPS = 60

func init() {
	runtime.LockOSThread()
}

// Clock reads the GLFW timer.
type Clock struct{}

func (Clock) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

type App interface {
	Init() error
	IsRunning() bool
	Render() error
	Close() error
}

// RawKeyReceiver gets every GLFW key event, including the OS key repeats
// that the engine filters out.
type RawKeyReceiver interface {
	OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
}

type CharReceiver interface {
	OnChar(char rune)
}

type FramebufferReceiver interface {
	OnFramebufferSize(width, height int)
}

type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool

	// FPS is the frame rate the loop paces itself to. Zero means 60.
	FPS int

	Logger *slog.Logger
}

// host forwards window events to an engine.
type host struct {
	engine *keydown.Engine
	app    App
	logger *slog.Logger
}

func (h *host) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if rk, ok := h.app.(RawKeyReceiver); ok {
		rk.OnKey(key, scancode, action, mods)
	}
	code, ok := CodeForKey(key)
	if !ok {
		h.logger.Debug("ignoring unmapped glfw key", "key", key, "scancode", scancode)
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		h.engine.KeyPressed(code, ModifiersFrom(mods))
	case glfw.Release:
		h.engine.KeyReleased(code)
	}
}

func (h *host) onFocus(w *glfw.Window, focused bool) {
	if !focused {
		h.logger.Debug("window lost focus, releasing held keys", "held", h.engine.HeldKeys())
		h.engine.FocusLost()
	}
}

// Run opens a window, initializes app and drives the engine until the app
// stops running, the window is closed, or the engine's run loop fails.
// The frames of the engine's run loop are requested from queue, which Run
// drains once per rendered frame.
func Run(opts Options, engine *keydown.Engine, queue *keydown.FrameQueue, app App) error {
	if queue == nil {
		return errors.New("glfwhost: nil frame queue")
	}
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	h := &host{engine: engine, app: app, logger: opts.Logger}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := createWindow(opts)
	if err != nil {
		return err
	}
	defer window.Destroy()

	framebufferSizeCallback := func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		if fr, ok := app.(FramebufferReceiver); ok {
			fr.OnFramebufferSize(width, height)
		}
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	window.SetKeyCallback(h.onKey)
	window.SetFocusCallback(h.onFocus)
	if cr, ok := app.(CharReceiver); ok {
		window.SetCharCallback(func(w *glfw.Window, char rune) {
			cr.OnChar(char)
		})
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	width, height := window.GetFramebufferSize()
	framebufferSizeCallback(window, width, height)

	if err := app.Init(); err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			opts.Logger.Warn("app close failed", "error", err)
		}
	}()

	frameSeconds := 1.0 / float64(opts.FPS)
	for app.IsRunning() && !window.ShouldClose() {
		start := glfw.GetTime()
		gl.ClearColor(0, 0, 0, 0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		queue.RunFrame()
		if err := engine.Err(); err != nil {
			return err
		}
		if err := app.Render(); err != nil {
			return err
		}
		window.SwapBuffers()
		elapsedSeconds := glfw.GetTime() - start
		if frameSeconds > elapsedSeconds {
			glfw.WaitEventsTimeout(frameSeconds - elapsedSeconds)
		} else {
			glfw.PollEvents()
		}
	}
	return nil
}

func createWindow(opts Options) (*glfw.Window, error) {
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.AutoIconify, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)

	if !opts.Fullscreen {
		width, height := opts.Width, opts.Height
		if width <= 0 || height <= 0 {
			width, height = 800, 600
		}
		return glfw.CreateWindow(width, height, opts.Title, nil, nil)
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return nil, fmt.Errorf("no monitors found")
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return nil, fmt.Errorf("video mode cannot be determined")
	}
	glfw.WindowHint(glfw.RedBits, mode.RedBits)
	glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
	glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
	glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	return glfw.CreateWindow(mode.Width, mode.Height, opts.Title, monitor, nil)
}
