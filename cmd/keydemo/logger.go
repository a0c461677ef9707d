package main

import (
	"log/slog"
	"os"

	"github.com/cellux/keydown"
)

var logger = slog.Default()

func InitLogger(level string) error {
	logLevel, err := keydown.ResolveLogLevel(level)
	if err != nil {
		return err
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger = slog.New(handler)
	keydown.SetLogger(logger)
	return nil
}
