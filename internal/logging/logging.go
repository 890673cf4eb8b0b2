package logging

import (
	"log/slog"
	"os"
)

// Init configures the process-wide slog default. Verbose enables debug
// output; otherwise only warnings and errors reach the terminal so the
// report itself stays clean on stdout.
func Init(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
