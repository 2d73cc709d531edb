package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate beep.SampleRate = 44100

	meterRingSize = 4096
)

// Player owns the speaker while the hiss plays.
type Player struct {
	ctrl  *beep.Ctrl
	meter *Meter
}

// Chain builds hiss -> volume -> meter -> ctrl. volume is in halvings.
func Chain(seed uint64, volume float64) (*beep.Ctrl, *Meter) {
	vol := &effects.Volume{
		Streamer: NewHiss(seed, int(SampleRate)),
		Base:     2,
		Volume:   volume,
	}
	m := NewMeter(vol, meterRingSize)
	return &beep.Ctrl{Streamer: m}, m
}

// Start initialises the speaker and begins playing.
func Start(seed uint64, volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	ctrl, m := Chain(seed, volume)
	speaker.Play(ctrl)
	return &Player{ctrl: ctrl, meter: m}, nil
}

// Level returns the current loudness, 0 for a nil player.
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	return p.meter.Level()
}

// Close silences the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
}
