package events

import (
	"time"

	"github.com/lixenwraith/termlife/core"
)

// Type identifies a game event on the unified channel
type Type int

const (
	// TypeKey carries a key press
	// Trigger: Producer on keyboard input | Fields: Key
	TypeKey Type = iota

	// TypeClick carries a pointer button press in absolute screen coordinates
	// Trigger: Producer on mouse input | Fields: Button, X, Y
	TypeClick

	// TypeTick requests one generation step, ignored while paused
	// Trigger: Producer when the tick deadline passes | Fields: none
	TypeTick

	// TypeRateChanged mirrors the producer's clamped tick interval so the
	// displayed rate stays in sync
	// Trigger: Producer after a +/- key | Fields: Interval
	TypeRateChanged

	// TypeResize reports a changed simulation viewport
	// Trigger: Consumer after a render pass measures a different viewport,
	// fed back through the same channel so resize is serialized with every
	// other mutation | Fields: Area
	TypeResize
)

// Button identifies a pointer button
type Button int

const (
	ButtonPrimary   Button = iota // Left: set cell alive
	ButtonSecondary               // Right: set cell dead
)

// Key codes delivered in Event.Key for non-printable input
const (
	KeyEnter  = '\r'
	KeyEscape = rune(0x1b)
	KeyCtrlC  = rune(0x03)
)

// Event is the tagged union carried from producers to the consumer.
// Type selects which fields are meaningful; the rest are zero.
type Event struct {
	Type     Type
	Key      rune          // TypeKey
	Button   Button        // TypeClick
	X, Y     int           // TypeClick, absolute screen coordinates
	Interval time.Duration // TypeRateChanged
	Area     core.Area     // TypeResize
}
