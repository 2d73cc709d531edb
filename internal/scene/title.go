package scene

import (
	"time"

	"github.com/iburimskiy/sand-particles/internal/clock"
	"github.com/iburimskiy/sand-particles/internal/geom"
	"github.com/iburimskiy/sand-particles/internal/sand"
)

// Title is the sand-on-diagonal screen.
type Title struct {
	seed    uint64
	reroll  bool
	density float64

	clock   *clock.FrameClock
	elapsed float64
	frames  uint64
}

// NewTitle returns the title state. With reroll the grain scatter changes
// every frame instead of staying fixed for the seed.
func NewTitle(seed uint64, reroll bool, density float64) *Title {
	t := &Title{seed: seed, reroll: reroll, density: density}
	t.clock = clock.New(func(elapsed float64) {
		t.elapsed = elapsed
		t.frames++
	})
	return t
}

// Tick feeds one frame timestamp.
func (t *Title) Tick(now time.Time) { t.clock.Frame(now) }

// Stop ends the animation.
func (t *Title) Stop() { t.clock.Stop() }

func (t *Title) Elapsed() float64 { return t.elapsed }

// Diagonal is the curve the sand follows on a w×h canvas.
func Diagonal(w, h float64) geom.Line {
	return geom.NewLine(geom.Vec{}, geom.Vec{X: w, Y: h})
}

// Grains returns the grains to paint on a w×h canvas for the current frame.
func (t *Title) Grains(w, h float64) []sand.Grain {
	seed := t.seed
	if t.reroll {
		seed ^= t.frames * 0x9e3779b97f4a7c15
	}
	return sand.LineGrains(seed, Diagonal(w, h), t.elapsed, t.density)
}
