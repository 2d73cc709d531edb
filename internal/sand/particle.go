package sand

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/sand-particles/internal/geom"
)

// Palette is the set of sand tones particles are painted with.
var Palette = [...]color.RGBA{
	{R: 97, G: 89, B: 75, A: 255},
	{R: 93, G: 80, B: 67, A: 255},
	{R: 91, G: 81, B: 70, A: 255},
	{R: 81, G: 72, B: 62, A: 255},
	{R: 92, G: 81, B: 69, A: 255},
}

// SandColor picks a palette entry.
func SandColor(r *rand.Rand) color.RGBA {
	return Palette[r.IntN(len(Palette))]
}

// Particle is a sand grain riding its own pathway. Its apparent motion comes
// from the period passed to Position; nothing about it changes over time.
type Particle struct {
	T        float64
	Velocity float64
	Pathway  *Pathway
	Color    color.RGBA
}

// NewParticle samples a phase in [0,1), a velocity multiplier in
// [0.75,1.25), a pathway of its own and a sand color.
func NewParticle(r *rand.Rand) Particle {
	return Particle{
		T:        r.Float64(),
		Velocity: uniform(r, 0.75, 1.25),
		Pathway:  NewPathway(r),
		Color:    SandColor(r),
	}
}

// NewPopulation creates n particles.
func NewPopulation(r *rand.Rand, n int) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = NewParticle(r)
	}
	return ps
}

// Phase returns where along the curve the particle sits for period.
func (p Particle) Phase(period float64) float64 {
	return Wrap01(p.T + p.Velocity*period)
}

// Position resolves the particle on curve c at the given period.
func (p Particle) Position(c geom.Curve, amplitude, period float64) geom.Vec {
	return p.Pathway.Resolve(c, amplitude, p.Phase(period))
}
