package sand

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/sand-particles/internal/geom"
)

const (
	// DefaultDensity is the number of grain slots per pixel of curve length.
	DefaultDensity = 0.1
	// GrainsPerSlot is how many grains are scattered around each slot.
	GrainsPerSlot = 4

	normalJitter = 10.0
	waveHeight   = 3.0
	waveRate     = 300.0
	waveWrap     = 1000.0
	minRadius    = 2.0
	maxRadius    = 4.0
)

// Grain is a single filled circle to paint.
type Grain struct {
	Pos    geom.Vec
	Radius float64
}

// Slots returns the number of grain slots for a curve of the given length.
func Slots(length, density float64) int {
	return int(math.Floor(length * density))
}

// LineGrains scatters grains along c for one frame. The generator is built
// from seed on every call, so the scatter pattern is the same for a given
// seed and only the sine wave term moves with elapsed. Callers wanting a
// fresh scatter each frame pass a different seed per frame.
func LineGrains(seed uint64, c geom.Curve, elapsed, density float64) []Grain {
	n := Slots(c.Length(), density)
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewPCG(seed, seed))
	variance := 1 / float64(n) / 2

	grains := make([]Grain, 0, n*GrainsPerSlot)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		wave := waveHeight * math.Sin(math.Mod(waveRate*t+elapsed, waveWrap))
		for k := 0; k < GrainsPerSlot; k++ {
			shift := uniform(r, -normalJitter, normalJitter) + wave
			dt := uniform(r, -variance, variance)
			radius := uniform(r, minRadius, maxRadius)

			ct := t + dt
			grains = append(grains, Grain{
				Pos:    c.Value(ct).Add(c.Normal(ct).Scale(shift)),
				Radius: radius,
			})
		}
	}
	return grains
}
