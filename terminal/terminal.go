// Package terminal owns the tcell screen lifecycle: raw mode, alternate
// screen, mouse capture, and the bounded-wait input poll the event producer
// blocks on. It is a thin platform wrapper with no game logic.
package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminal wraps a tcell screen with a poll-with-timeout input source.
// tcell's own event pump runs on an internal goroutine bridged through
// ChannelEvents; Poll selects on that channel against a timer.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	finiOnce sync.Once
}

// New creates and initializes the terminal: raw mode, alternate screen,
// mouse capture enabled, cursor hidden. Errors here are fatal setup failures;
// the caller must abort before spawning any goroutine.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(t.events, t.quit)
	return t, nil
}

// Screen exposes the underlying tcell screen for rendering
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Fini restores the terminal state. Safe to call multiple times.
// Must run on every exit path; callers defer it immediately after New.
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}

// Poll blocks up to timeout for the next input event, or until done is
// closed. A zero timeout drains without blocking. Returns false on timeout,
// cancellation, or when the event source has closed (screen finalized).
// A nil done channel never cancels.
func (t *Terminal) Poll(timeout time.Duration, done <-chan struct{}) (tcell.Event, bool) {
	if timeout <= 0 {
		select {
		case ev, ok := <-t.events:
			return ev, ok && ev != nil
		default:
			return nil, false
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok || ev == nil {
			// Source closed (screen finalized). Wait out the timeout so a
			// producer that has not been stopped yet cannot busy-loop.
			select {
			case <-timer.C:
			case <-done:
			}
			return nil, false
		}
		return ev, true
	case <-timer.C:
		return nil, false
	case <-done:
		return nil, false
	}
}

// ANSI restore sequences for crash paths
var (
	csiMouseOff      = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini() cannot be called normally.
// Best-effort: escape sequences alone don't restore termios, but they undo
// mouse capture and the alternate screen so the stack trace is readable.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
