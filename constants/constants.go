package constants

import "time"

// Simulation timing
const (
	// DefaultTickInterval is the starting delay between generations
	DefaultTickInterval = 250 * time.Millisecond

	// TickStep is the increment applied by the +/- rate keys
	TickStep = 10 * time.Millisecond

	// MinTickInterval is the floor for the tick interval
	// Prevents the producer from busy-looping at near-zero timeouts
	MinTickInterval = 30 * time.Millisecond
)

// EventChannelSize bounds the producer->consumer backlog
// Ticks are not coalesced, so at very low intervals the channel can run
// ahead of rendering and the UI lags wall-clock time until it drains
const EventChannelSize = 256

// Screen layout
const (
	// ScreenMargin is the outer margin around both panes
	ScreenMargin = 2

	// SimPanePercent is the share of content width given to the grid pane,
	// the rest holds the control panel
	SimPanePercent = 85
)

// AliveRune is the glyph painted for a live cell
const AliveRune = '█'
