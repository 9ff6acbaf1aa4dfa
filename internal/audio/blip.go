//go:build ebiten

// Package audio plays the short click blip heard when a ripple is spawned.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Blipper owns the speaker and plays short sine blips. The zero value is a
// disabled blipper; call Init to open the device.
type Blipper struct {
	initialized bool
}

// Init opens the audio device. When it fails the blipper stays silent and the
// caller can keep running without sound.
func (b *Blipper) Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		b.initialized = true
	}
	return err
}

// Play emits a 50ms sine blip at the given frequency. A no-op until Init
// succeeds.
func (b *Blipper) Play(freq float64) {
	if !b.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}
