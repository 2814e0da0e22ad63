// Package debug provides an opt-in trace log for the byte-range requests
// issued while reading a file, toggled at process start rather than wired
// through a logging framework.
package debug

import (
	"fmt"
	"os"
)

var enabled bool

// Toggle turns the debug trace on or off; cmd/pgrep wires this to its
// --debug flag.
func Toggle(on bool) { enabled = on }

// Format writes a trace line to stderr when debugging is enabled.
func Format(format string, args ...any) {
	if enabled {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
