// Package audio plays an optional wind-over-sand hiss next to the visuals.
package audio

import (
	"math"
	"math/rand/v2"
)

const (
	// hissSmoothing is the one-pole low-pass coefficient applied to white
	// noise. Smaller is darker.
	hissSmoothing = 0.08
	// swellHz is how often the hiss rises and falls.
	swellHz = 0.12
)

// Hiss is an endless stereo streamer of filtered noise with a slow swell.
// Every sample lies in [-1, 1].
type Hiss struct {
	rng   *rand.Rand
	lp    [2]float64
	phase float64
	step  float64
}

// NewHiss returns a hiss for the given sample rate in Hz.
func NewHiss(seed uint64, sampleRate int) *Hiss {
	return &Hiss{
		rng:  rand.New(rand.NewPCG(seed, seed^0x5a4d)),
		step: swellHz / float64(sampleRate),
	}
}

func (h *Hiss) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		gain := 0.6 + 0.4*math.Sin(2*math.Pi*h.phase)
		h.phase += h.step
		if h.phase >= 1 {
			h.phase--
		}
		for c := range h.lp {
			white := h.rng.Float64()*2 - 1
			h.lp[c] += hissSmoothing * (white - h.lp[c])
			samples[i][c] = gain * h.lp[c]
		}
	}
	return len(samples), true
}

func (h *Hiss) Err() error { return nil }
