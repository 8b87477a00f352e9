package main

import (
	"os"

	"binstrap/cmd"
)

// version is stamped at release time via -ldflags "-X main.version=...".
var version = "dev"

// main delegates to cmd.Execute, which parses the command line and
// runs the selected command. Any failure has already been reported by
// the time Execute returns, so main only sets the exit code.
func main() {
	if err := cmd.Execute(version); err != nil {
		os.Exit(1)
	}
}
