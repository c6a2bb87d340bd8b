// Package audio plays short feedback tones through the system speaker.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	cueSampleRate = beep.SampleRate(44100)
	cueFrequency  = 880
	cueDuration   = 50 * time.Millisecond
)

// Cue owns the speaker and plays collision feedback tones. A failed
// speaker init is non-fatal for callers; the game runs without sound
type Cue struct {
	enabled bool
}

// NewCue initializes the speaker. The returned error is informational;
// the Cue is still usable (as a no-op) when init fails
func NewCue() (*Cue, error) {
	err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10))
	return &Cue{enabled: err == nil}, err
}

// Collision plays a short sine tone. No-op when the speaker is
// unavailable
func (c *Cue) Collision() {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(cueSampleRate, cueFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(cueSampleRate.N(cueDuration), sine))
}

// Close releases the speaker
func (c *Cue) Close() {
	if c.enabled {
		speaker.Close()
	}
}
