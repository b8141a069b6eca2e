package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	enterFreq    = 880.0 // A5
	leaveFreq    = 440.0 // A4
	cueDuration  = 40 * time.Millisecond
	bufferLength = time.Second / 10
)

// Cue plays short tones when the pointer enters or leaves the surface
// A nil *Cue is valid and silent
type Cue struct {
	rate   beep.SampleRate
	volume float64
}

// NewCue initializes the speaker
// volume is linear in [0, 1]; 0 mutes
func NewCue(sampleRate int, volume float64) (*Cue, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(bufferLength)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Cue{rate: rate, volume: volume}, nil
}

// Enter plays the pointer-enter tone
func (c *Cue) Enter() {
	c.play(enterFreq)
}

// Leave plays the pointer-leave tone
func (c *Cue) Leave() {
	c.play(leaveFreq)
}

// Close releases the speaker
func (c *Cue) Close() {
	if c == nil {
		return
	}
	speaker.Close()
}

func (c *Cue) play(freq float64) {
	if c == nil {
		return
	}
	s, err := tone(c.rate, freq, cueDuration, c.volume)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// tone builds a finite sine streamer at the given linear volume
func tone(rate beep.SampleRate, freq float64, d time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Take(rate.N(d), sine), vol), nil
}

// newVolume maps linear volume to a base-2 exponent; zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
