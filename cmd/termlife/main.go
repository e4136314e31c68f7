package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/termlife/audio"
	"github.com/lixenwraith/termlife/constants"
	"github.com/lixenwraith/termlife/core"
	"github.com/lixenwraith/termlife/engine"
	"github.com/lixenwraith/termlife/events"
	"github.com/lixenwraith/termlife/game"
	"github.com/lixenwraith/termlife/render"
	"github.com/lixenwraith/termlife/terminal"
)

var (
	tickFlag = flag.Duration("tick", constants.DefaultTickInterval,
		"initial tick interval (clamped to 30ms minimum)")
	muteFlag = flag.Bool("mute", false, "start with sound muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		core.HandleCrash(recover())
	}()

	flag.Parse()

	// Raw mode, alternate screen, mouse capture. Fatal before any goroutine
	// is spawned; the deferred Fini covers every later exit path.
	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	app := game.NewApp(*tickFlag)

	if sound, err := audio.NewEngine(); err == nil {
		if *muteFlag {
			sound.ToggleMute()
		}
		app.AttachAudio(sound)
	} else {
		log.Printf("Audio initialization failed: %v (continuing without sound)", err)
	}

	renderer := render.New(term.Screen())

	eventCh := make(chan events.Event, constants.EventChannelSize)
	producer := events.NewProducer(term, engine.NewTickClock(app.Interval()), eventCh)
	producer.Start()
	defer producer.Stop()

	run(app, renderer, eventCh)
}

// run is the consumer loop: strict alternation of one render pass and one
// event. The render pass reports the measured viewport; a mismatch with the
// cached copy feeds a Resize event back into the same channel, so resize is
// serialized with every other mutation instead of applied mid-frame.
func run(app *game.App, renderer *render.Renderer, eventCh chan events.Event) {
	for {
		viewport := renderer.Frame(app)
		if viewport != app.Viewport() {
			select {
			case eventCh <- events.Event{Type: events.TypeResize, Area: viewport}:
			default:
				// Channel saturated with ticks; the viewport mismatch
				// persists, so the resize is re-sent on the next frame
			}
		}

		app.HandleEvent(<-eventCh)

		if app.ShouldQuit() {
			return
		}
	}
}
