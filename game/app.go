// Package game holds the consumer-side application state machine.
package game

import (
	"time"

	"github.com/lixenwraith/termlife/audio"
	"github.com/lixenwraith/termlife/core"
	"github.com/lixenwraith/termlife/engine"
	"github.com/lixenwraith/termlife/events"
)

// App is the authoritative application state: the grid, the running flag,
// the displayed tick interval and the cached viewport. Owned exclusively by
// the consumer loop; the producer and renderer never touch it directly, all
// mutation flows through HandleEvent one event at a time.
//
// The simulation starts paused on a zero-size grid; true dimensions are only
// known after the first render pass measures the viewport, so the first
// Resize event brings the grid to a valid state.
type App struct {
	grid    *engine.Grid
	running bool

	// Display mirror of the producer-owned clock interval
	interval time.Duration

	// Cached viewport, updated only when a Resize event round-trips
	// through the channel
	viewport core.Area

	// Last accepted click in absolute screen coordinates, diagnostic only
	lastClickX, lastClickY int

	quit  bool
	sound *audio.Engine
}

// NewApp creates the paused startup state
func NewApp(interval time.Duration) *App {
	return &App{
		grid:     engine.NewGrid(0, 0),
		interval: engine.ClampInterval(interval),
	}
}

// AttachAudio wires the optional feedback engine
func (a *App) AttachAudio(sound *audio.Engine) {
	a.sound = sound
}

// Grid returns the simulation grid
func (a *App) Grid() *engine.Grid { return a.grid }

// Running reports whether the simulation is advancing on ticks
func (a *App) Running() bool { return a.running }

// Interval returns the displayed tick interval
func (a *App) Interval() time.Duration { return a.interval }

// Viewport returns the cached simulation viewport
func (a *App) Viewport() core.Area { return a.viewport }

// LastClick returns the last accepted click position, for the debug readout
func (a *App) LastClick() (x, y int) { return a.lastClickX, a.lastClickY }

// ShouldQuit reports whether the quit transition has fired
func (a *App) ShouldQuit() bool { return a.quit }

// Sound returns the attached audio engine, nil when running silent
func (a *App) Sound() *audio.Engine { return a.sound }

// HandleEvent applies exactly one transition
func (a *App) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.TypeKey:
		a.handleKey(ev.Key)

	case events.TypeClick:
		a.handleClick(ev)

	case events.TypeTick:
		// Time passes but the grid is frozen while paused
		if a.running {
			a.grid.Step()
		}

	case events.TypeRateChanged:
		a.interval = ev.Interval

	case events.TypeResize:
		a.handleResize(ev.Area)
	}
}

func (a *App) handleKey(key rune) {
	switch key {
	case events.KeyEnter:
		a.running = !a.running
		a.sound.PlayToggle()

	case 'q', events.KeyEscape, events.KeyCtrlC:
		a.quit = true

	case 'm':
		a.sound.ToggleMute()
	}
}

// handleClick edits a cell when paused and inside the viewport.
// Clicks while running or outside the viewport are ignored without error;
// editing is a paused-state-only capability enforced here, not by the grid.
func (a *App) handleClick(ev events.Event) {
	if a.running || !a.viewport.Contains(ev.X, ev.Y) {
		return
	}

	a.lastClickX, a.lastClickY = ev.X, ev.Y

	// Translate absolute screen coordinates to grid-local; the reported
	// viewport already excludes the border
	row := ev.Y - a.viewport.Y
	col := ev.X - a.viewport.X
	if a.grid.Set(row, col, ev.Button == events.ButtonPrimary) {
		a.sound.PlayEdit()
	}
}

// handleResize replaces the grid with an all-dead one of the new dimensions
// and forces the simulation back to paused
func (a *App) handleResize(area core.Area) {
	a.grid.Resize(area.Width, area.Height)
	a.running = false
	a.viewport = area
}
