package core

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestHandleCrashNilIsNoOp(t *testing.T) {
	// Mirrors the deferred recover() in main: nil must fall through
	// without exiting the process
	HandleCrash(nil)
}

// A panic in a Go-spawned goroutine must exit the process with code 1 and
// print the crash banner. HandleCrash exits, so the crashing half runs in a
// re-executed test binary.
func TestGoRoutesPanicThroughHandleCrash(t *testing.T) {
	if os.Getenv("TERMLIFE_CRASH_TEST") == "1" {
		Go(func() { panic("boom") })
		time.Sleep(2 * time.Second)
		os.Exit(0) // Not reached: HandleCrash exits first
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestGoRoutesPanicThroughHandleCrash")
	cmd.Env = append(os.Environ(), "TERMLIFE_CRASH_TEST=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("crashing child exited cleanly (err=%v), want exit code 1; output: %s", err, out)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1; output: %s", exitErr.ExitCode(), out)
	}
	if !strings.Contains(string(out), "TERMLIFE CRASHED: boom") {
		t.Fatalf("crash output missing banner: %s", out)
	}
	if !strings.Contains(string(out), "Stack Trace:") {
		t.Fatalf("crash output missing stack trace: %s", out)
	}
}
