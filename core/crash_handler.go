package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termlife/terminal"
)

// HandleCrash restores the terminal and reports a panic before exiting.
// This is the single crash path: main's recover and every goroutine spawned
// through Go funnel here, so raw mode is always undone before the stack
// trace prints.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()

	// \r\n because raw mode may still be active
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMLIFE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go spawns fn with panic recovery routed through HandleCrash.
// Use instead of the go keyword for any goroutine that runs while the
// terminal is in raw mode.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
