// Command keydemo opens a window that compares raw key events with the
// polled key state kept by keydown.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cellux/keydown"
	"github.com/cellux/keydown/glfwhost"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	fontPath := flag.String("font", "/usr/share/fonts/droid/DroidSansMono.ttf", "monospace TrueType font")
	fontSize := flag.Float64("font-size", 14, "font size in points")
	fps := flag.Int("fps", 60, "frames per second")
	clickPath := flag.String("click", "", "WAV or MP3 file played on key press (default: synthesized click)")
	mute := flag.Bool("mute", false, "do not play a click on key press")
	fullscreen := flag.Bool("fullscreen", false, "open a fullscreen window on the primary monitor")
	flag.Parse()

	if err := InitLogger(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	engine := keydown.NewEngine(nil, glfwhost.Clock{}, nil)
	app := CreateApp(engine, AppOptions{
		FontPath:  *fontPath,
		FontSize:  *fontSize,
		ClickPath: *clickPath,
		Mute:      *mute,
	})
	opts := glfwhost.Options{
		Title:      "keydown",
		Fullscreen: *fullscreen,
		FPS:        *fps,
		Logger:     logger,
	}
	if err := glfwhost.Run(opts, engine, engine.Queue(), app); err != nil {
		logger.Error("keydemo failed", "error", err)
		os.Exit(1)
	}
}
