// Package logging configures the process-wide slog logger. All tools in
// this repo print their JSON result on stdout, so log output always goes
// to stderr.
package logging

import (
	"log/slog"
	"os"
)

// Init installs a text handler on stderr as the default logger. When debug
// is set the level drops to Debug so the tools can dump intermediate
// pipeline state.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
