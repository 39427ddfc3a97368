// Command lift is the Lift language CLI: it lexes, parses, analyzes, and
// either interprets or (once a backend is registered) JIT-compiles a
// program, per cmd/lift/cmd.
package main

import (
	"os"

	"github.com/ccdavis/lift-lang/cmd/lift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
