package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termlife/core"
	"github.com/lixenwraith/termlife/engine"
)

// Source delivers raw terminal input with a bounded, cancelable wait
type Source interface {
	// Poll blocks up to timeout for the next input event, or until done
	// is closed. Returns false on timeout, cancellation, or a closed
	// source.
	Poll(timeout time.Duration, done <-chan struct{}) (tcell.Event, bool)
}

// Producer multiplexes keyboard input, pointer input and simulation ticks
// onto a single ordered channel. It runs on one goroutine, so the emitted
// stream is a total order; the consumer processes it without reordering or
// coalescing.
//
// The producer owns the tick clock. Rate keys mutate the interval here first,
// then a RateChanged notification keeps the consumer's displayed rate in sync.
type Producer struct {
	source Source
	clock  *engine.TickClock
	out    chan<- Event

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewProducer creates a producer feeding the given channel
func NewProducer(source Source, clock *engine.TickClock, out chan<- Event) *Producer {
	return &Producer{
		source:   source,
		clock:    clock,
		out:      out,
		stopChan: make(chan struct{}),
	}
}

// Start launches the producer goroutine
func (p *Producer) Start() {
	if p.running.CompareAndSwap(false, true) {
		p.wg.Add(1)
		// core.Go for safe execution with centralized crash handling
		core.Go(p.loop)
	}
}

// Stop terminates the producer and waits for it to exit.
// Safe to call multiple times.
func (p *Producer) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
		p.wg.Wait()
	})
}

// loop blocks on "next input or next tick, whichever comes first".
// Input is forwarded immediately, then the tick deadline is checked
// independently, so a tick is never starved by back-to-back input and input
// never waits longer than the remaining tick budget.
func (p *Producer) loop() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		default:
		}

		// stopChan cancels an in-flight wait so Stop is never held up
		// for the remaining tick budget
		if ev, ok := p.source.Poll(p.clock.TimeUntilNext(), p.stopChan); ok {
			if !p.translate(ev) {
				return
			}
		}

		if p.clock.Due() {
			if !p.send(Event{Type: TypeTick}) {
				return
			}
			p.clock.Mark()
		}
	}
}

// translate converts a raw terminal event into game events.
// Returns false when delivery failed and the producer should exit.
func (p *Producer) translate(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return p.translateKey(tev)

	case *tcell.EventMouse:
		x, y := tev.Position()
		switch {
		case tev.Buttons()&tcell.Button1 != 0:
			return p.send(Event{Type: TypeClick, Button: ButtonPrimary, X: x, Y: y})
		case tev.Buttons()&tcell.Button3 != 0:
			return p.send(Event{Type: TypeClick, Button: ButtonSecondary, X: x, Y: y})
		}
		// Wheel and buttonless motion are dropped. Motion with a button
		// held reports the same button mask, so dragging paints cells.

	case *tcell.EventResize:
		// Dropped: resize is detected by the consumer comparing the
		// renderer-reported viewport on each frame, not from input
	}
	return true
}

func (p *Producer) translateKey(tev *tcell.EventKey) bool {
	switch tev.Key() {
	case tcell.KeyRune:
		switch tev.Rune() {
		case '+':
			return p.send(Event{Type: TypeRateChanged, Interval: p.clock.Increase()})
		case '-':
			return p.send(Event{Type: TypeRateChanged, Interval: p.clock.Decrease()})
		default:
			return p.send(Event{Type: TypeKey, Key: tev.Rune()})
		}
	case tcell.KeyEnter:
		return p.send(Event{Type: TypeKey, Key: KeyEnter})
	case tcell.KeyEscape:
		return p.send(Event{Type: TypeKey, Key: KeyEscape})
	case tcell.KeyCtrlC:
		return p.send(Event{Type: TypeKey, Key: KeyCtrlC})
	}
	return true
}

// send delivers an event unless the producer has been stopped
func (p *Producer) send(ev Event) bool {
	select {
	case p.out <- ev:
		return true
	case <-p.stopChan:
		return false
	}
}
