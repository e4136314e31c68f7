// Package audio provides short feedback blips through the speaker.
// Everything here is best-effort: initialization failure leaves the game
// silent but fully playable, and all methods are nil-receiver safe so the
// rest of the code never checks whether sound is available.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays sine blips for user feedback
type Engine struct {
	muted atomic.Bool
}

// NewEngine initializes the speaker. A non-nil error means no audio device
// is usable; callers log and continue without sound.
func NewEngine() (*Engine, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Engine{}, nil
}

// PlayEdit blips on a successful cell edit
func (e *Engine) PlayEdit() {
	e.play(880, 40*time.Millisecond)
}

// PlayToggle blips on a run/pause transition
func (e *Engine) PlayToggle() {
	e.play(440, 60*time.Millisecond)
}

// ToggleMute flips the mute state and returns the new value
func (e *Engine) ToggleMute() bool {
	if e == nil {
		return true
	}
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether sound is off. A nil engine is always muted.
func (e *Engine) Muted() bool {
	return e == nil || e.muted.Load()
}

func (e *Engine) play(freq float64, d time.Duration) {
	if e == nil || e.muted.Load() {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}
