package main

import (
	"fmt"
	"os"

	"github.com/ppiankov/faasspectre/internal/commands"
)

// Build info injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := commands.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
