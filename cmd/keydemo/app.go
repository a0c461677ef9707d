package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cellux/keydown"
	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"
)

const logCapacity = 256

var (
	colorText  = mgl.Vec4{0.8, 0.8, 0.8, 1}
	colorTitle = mgl.Vec4{1, 0.75, 0.3, 1}
	colorHeld  = mgl.Vec4{0.4, 1, 0.4, 1}
)

type AppOptions struct {
	FontPath  string
	FontSize  float64
	ClickPath string
	Mute      bool
}

// App shows the raw key repeat stream of Q next to the engine's held state
// of P, the way a browser page would compare keydown events with polling.
type App struct {
	engine     *keydown.Engine
	opts       AppOptions
	shouldExit bool
	fbSize     Size
	text       *TextRenderer
	clicker    *Clicker

	nativeLog *lineLog
	engineLog *lineLog
	eventLog  *lineLog
	status    string

	lastElapsed time.Duration
	lastNow     time.Duration
}

func CreateApp(engine *keydown.Engine, opts AppOptions) *App {
	return &App{
		engine:    engine,
		opts:      opts,
		nativeLog: newLineLog(logCapacity),
		engineLog: newLineLog(logCapacity),
		eventLog:  newLineLog(logCapacity),
	}
}

func (app *App) Init() error {
	face, err := LoadFace(app.opts.FontPath, app.opts.FontSize)
	if err != nil {
		return err
	}
	atlas, err := RenderAtlas(face)
	if err != nil {
		return err
	}
	text, err := NewTextRenderer(atlas)
	if err != nil {
		return err
	}
	app.text = text
	if !app.opts.Mute {
		clicker, err := NewClicker(app.opts.ClickPath)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			app.clicker = clicker
		}
	}
	app.bindKeys()
	app.engine.Run(app.frame)
	return nil
}

func (app *App) bindKeys() {
	for _, name := range app.engine.Keys() {
		key := app.engine.MustKey(name)
		key.Press(func(ev *keydown.Event) {
			app.onPress(name, ev)
		})
		key.Up(func(ev *keydown.Event) {
			app.logEvent(name, ev)
		})
	}
	p := app.engine.MustKey("P")
	p.Down(func(*keydown.Event) {
		app.engineLog.Add(`The "P" key is being held down!`)
	})
	p.Up(func(ev *keydown.Event) {
		app.engineLog.Clear()
		app.logEvent("P", ev)
	})
	app.engine.MustKey("ESC").Press(func(ev *keydown.Event) {
		app.onPress("ESC", ev)
		app.Quit()
	})
	app.engine.MustKey("C").Press(func(ev *keydown.Event) {
		app.onPress("C", ev)
		if ev != nil && ev.Mods.Has(keydown.ModCtrl) {
			app.copyLog()
		}
	})
}

func (app *App) onPress(name string, ev *keydown.Event) {
	if app.clicker != nil {
		app.clicker.Play()
	}
	app.logEvent(name, ev)
}

func (app *App) logEvent(name string, ev *keydown.Event) {
	if ev == nil {
		app.eventLog.Add(name)
		return
	}
	app.eventLog.Add(fmt.Sprintf("%-10s %s%s", ev.Kind, ev.Mods, name))
}

func (app *App) copyLog() {
	if err := clipboard.WriteAll(app.eventLog.String()); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		app.status = "clipboard: " + err.Error()
		return
	}
	app.status = fmt.Sprintf("copied %d lines to the clipboard", app.eventLog.Len())
}

func (app *App) frame(elapsed, now time.Duration) error {
	app.engine.Tick()
	app.lastElapsed = elapsed
	app.lastNow = now
	return nil
}

func (app *App) IsRunning() bool {
	return !app.shouldExit
}

func (app *App) Quit() {
	app.shouldExit = true
}

func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	logger.Debug("OnKey", "key", key, "scancode", scancode, "action", action, "mods", mods)
	if key != glfw.KeyQ {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		app.nativeLog.Add(`The "Q" key is being held down...?`)
	case glfw.Release:
		app.nativeLog.Clear()
	}
}

func (app *App) OnFramebufferSize(width, height int) {
	logger.Debug("OnFramebufferSize", "width", width, "height", height)
	app.fbSize = Size{X: width, Y: height}
}

func (app *App) Render() error {
	tr := app.text
	screen := Rect{Max: app.fbSize}
	cells := tr.Cells(screen)
	if cells.X < 2 || cells.Y < 8 {
		return nil
	}
	half := cells.X / 2
	footer := 6
	paneRows := cells.Y - footer - 2

	tr.Print(0, 0, "keydown demo: hold Q and P, ESC quits, Ctrl+C copies the event log", cells.X)
	tr.Print(0, 1, "native keydown (Q)", half-1)
	tr.Print(half, 1, "engine held (P)", half)
	tr.Print(0, cells.Y-footer, "events", cells.X)
	tr.Flush(app.fbSize, screen, colorTitle)

	for i, line := range app.nativeLog.Tail(paneRows) {
		tr.Print(0, 2+i, line, half-1)
	}
	for i, line := range app.engineLog.Tail(paneRows) {
		tr.Print(half, 2+i, line, half)
	}
	events := app.eventLog.Tail(footer - 3)
	for i, line := range events {
		tr.Print(0, cells.Y-footer+1+i, line, cells.X)
	}
	tr.Print(0, cells.Y-2, fmt.Sprintf("frame %d  elapsed %5.1fms  t=%.2fs  %s",
		app.engine.Loop().Frames(),
		float64(app.lastElapsed)/float64(time.Millisecond),
		app.lastNow.Seconds(),
		app.status), cells.X)
	tr.Flush(app.fbSize, screen, colorText)

	tr.Print(0, cells.Y-1, "held: "+strings.Join(app.engine.HeldKeys(), " "), cells.X)
	tr.Flush(app.fbSize, screen, colorHeld)
	return nil
}

func (app *App) Close() error {
	logger.Debug("Close")
	app.engine.Stop()
	if app.text != nil {
		app.text.Close()
	}
	if app.clicker != nil {
		return app.clicker.Close()
	}
	return nil
}
