// Package sand evaluates the sand pathway wave and turns curves, pathways and
// elapsed time into the grains painted each frame. Everything here is a pure
// function of its inputs; no grain position is kept between frames.
package sand

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/sand-particles/internal/geom"
)

// DefaultSteps is the number of segments ToPath uses when asked for a
// full-resolution polyline.
const DefaultSteps = 1000

// Factors are the 12 wave coefficients: four groups of (scale, frequency,
// phase), one group per term of the wave.
type Factors [12]float64

// RandomFactors samples a fresh coefficient set. Scales and frequencies are
// uniform in [2,5), phases uniform in [-π,π).
func RandomFactors(r *rand.Rand) Factors {
	var f Factors
	for g := 0; g < 4; g++ {
		f[3*g] = uniform(r, 2, 5)
		f[3*g+1] = uniform(r, 2, 5)
		f[3*g+2] = uniform(r, -math.Pi, math.Pi)
	}
	return f
}

// Pathway is a pseudo-random scalar wave over t used to displace particles
// perpendicular to a base curve. It is immutable once built.
type Pathway struct {
	f Factors
}

// NewPathway builds a pathway from freshly sampled factors.
func NewPathway(r *rand.Rand) *Pathway {
	return &Pathway{f: RandomFactors(r)}
}

// PathwayFrom builds a pathway with fixed factors.
func PathwayFrom(f Factors) *Pathway {
	return &Pathway{f: f}
}

func (p *Pathway) Factors() Factors { return p.f }

// Value returns the wave at t. The reciprocal exponential terms peak near
// e when the inner sine approaches -1; the output is not clamped.
func (p *Pathway) Value(t float64) float64 {
	f := &p.f
	a := math.Sin(f[0]*(f[1]*math.Pi*t) + f[2])
	b := 1 / math.Exp(math.Sin(f[3]*(f[4]*math.Pi*t)+f[5]))
	c := math.Sin(f[6]*(f[7]*math.Pi*t) + f[8])
	d := 1 / math.Exp(math.Sin(f[9]*(f[10]*math.Pi*t)+f[11]))
	return (a + b + c + d) / 4
}

// Resolve displaces the curve point at t along the curve normal by the wave
// value scaled by amplitude.
func (p *Pathway) Resolve(c geom.Curve, amplitude, t float64) geom.Vec {
	return c.Value(t).Add(c.Normal(t).Scale(amplitude * p.Value(t)))
}

// ToPath samples Resolve at steps+1 evenly spaced t values covering [0,1].
// The result is a connected polyline. steps below 1 is treated as 1.
func (p *Pathway) ToPath(c geom.Curve, amplitude float64, steps int) []geom.Vec {
	if steps < 1 {
		steps = 1
	}
	pts := make([]geom.Vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, p.Resolve(c, amplitude, float64(i)/float64(steps)))
	}
	return pts
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Wrap01 maps x into [0,1), wrapping negative values around as well.
func Wrap01(x float64) float64 {
	w := x - math.Floor(x)
	if w >= 1 {
		return 0
	}
	return w
}
