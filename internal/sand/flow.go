package sand

import "math/rand/v2"

const (
	// DefaultPathways is the number of background pathway curves.
	DefaultPathways = 3
	// DefaultParticles is the size of the particle population.
	DefaultParticles = 1500
)

// Flow is the state of the pathway sample: a few background pathways that
// can be regenerated, and a fixed particle population that never changes
// after construction.
type Flow struct {
	Pathways  []*Pathway
	Particles []Particle

	rng *rand.Rand
}

// NewFlow samples the background pathways and the particle population.
func NewFlow(r *rand.Rand, pathways, particles int) *Flow {
	f := &Flow{
		Particles: NewPopulation(r, particles),
		rng:       r,
	}
	f.Pathways = f.sample(pathways)
	return f
}

// Regenerate discards the background pathways and samples new ones. The
// particle population and the pathways particles ride are left alone.
func (f *Flow) Regenerate() {
	f.Pathways = f.sample(len(f.Pathways))
}

func (f *Flow) sample(n int) []*Pathway {
	ps := make([]*Pathway, n)
	for i := range ps {
		ps[i] = NewPathway(f.rng)
	}
	return ps
}
