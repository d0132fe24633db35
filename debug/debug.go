// Package debug provides gated trace dumping for the evaluator, grounded
// on lessgo's debug.go (a package-level Enabled flag guarding spew.Dump
// calls scattered through the renderer).
package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
)

// Enabled gates every Dump/Tracef call; off by default so production
// compiles stay quiet. The CLI's --verbose/-v flag flips this.
var Enabled bool

// Writer is where trace output goes; defaults to stderr.
var Writer io.Writer = os.Stderr

var config = &spew.ConfigState{Indent: "  ", DisableMethods: true}

// Dump pretty-prints one or more values when Enabled, same convention as
// lessgo's debug.Dump.
func Dump(label string, vs ...any) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Writer, "--- %s ---\n", label)
	config.Fdump(Writer, vs...)
}

// Tracef writes a formatted trace line when Enabled.
func Tracef(format string, args ...any) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Writer, format+"\n", args...)
}
