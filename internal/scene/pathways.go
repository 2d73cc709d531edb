package scene

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/sand-particles/internal/clock"
	"github.com/iburimskiy/sand-particles/internal/geom"
	"github.com/iburimskiy/sand-particles/internal/sand"
)

const (
	GraphHeight    = 50.0
	FlowHeight     = 50.0
	ParticleHeight = 20.0
)

// Dot is a filled circle of the flow or particle rows.
type Dot struct {
	Pos    geom.Vec
	Radius float64
	Index  int
}

// Pathways is the pathway sample screen: one graph per background pathway,
// a flow row overlaying them, and a row with the particle population.
type Pathways struct {
	Flow *sand.Flow

	speed   float64
	clock   *clock.FrameClock
	elapsed float64
	period  float64

	width  float64
	rows   []Rect
	graphs [][]geom.Vec
	flows  [][]geom.Vec
}

// NewPathways builds the flow and lays it out for a canvas of the given
// width. speed is the fraction of a pathway travelled per second.
func NewPathways(r *rand.Rand, curves, particles int, speed, width float64) *Pathways {
	p := &Pathways{
		Flow:  sand.NewFlow(r, curves, particles),
		speed: speed,
	}
	p.clock = clock.New(func(elapsed float64) {
		p.elapsed = elapsed
		p.period = clock.Period(elapsed, p.speed)
	})
	p.Resize(width)
	return p
}

// Tick feeds one frame timestamp.
func (p *Pathways) Tick(now time.Time) { p.clock.Frame(now) }

// Stop ends the animation.
func (p *Pathways) Stop() { p.clock.Stop() }

func (p *Pathways) Elapsed() float64 { return p.elapsed }

// Period is the normalized animation time in [0,1).
func (p *Pathways) Period() float64 { return p.period }

// Click regenerates the background pathways.
func (p *Pathways) Click() {
	p.Flow.Regenerate()
	p.rebuild()
}

// Resize lays the rows out again for a new canvas width.
func (p *Pathways) Resize(width float64) {
	if width == p.width && p.rows != nil {
		return
	}
	p.width = width
	heights := make([]float64, 0, len(p.Flow.Pathways)+2)
	for range p.Flow.Pathways {
		heights = append(heights, GraphHeight)
	}
	heights = append(heights, FlowHeight, ParticleHeight)
	p.rows = Column(width, heights...)
	p.rebuild()
}

// rebuild samples the pathway polylines, which only change on Click or
// Resize.
func (p *Pathways) rebuild() {
	n := len(p.Flow.Pathways)
	p.graphs = make([][]geom.Vec, n)
	p.flows = make([][]geom.Vec, n)
	fr := p.FlowRow()
	for i, pw := range p.Flow.Pathways {
		r := p.rows[i]
		p.graphs[i] = pw.ToPath(r.Mid(), r.Amplitude(), sand.DefaultSteps)
		p.flows[i] = pw.ToPath(fr.Mid(), fr.Amplitude(), sand.DefaultSteps)
	}
}

// GraphRows returns one row per background pathway.
func (p *Pathways) GraphRows() []Rect { return p.rows[:len(p.Flow.Pathways)] }

func (p *Pathways) FlowRow() Rect { return p.rows[len(p.rows)-2] }

func (p *Pathways) ParticleRow() Rect { return p.rows[len(p.rows)-1] }

// Graph returns the polyline of background pathway i inside its own row.
func (p *Pathways) Graph(i int) []geom.Vec { return p.graphs[i] }

// FlowPath returns background pathway i as a polyline inside the flow row.
func (p *Pathways) FlowPath(i int) []geom.Vec { return p.flows[i] }

// FlowDots places one dot on every background pathway at the current period.
func (p *Pathways) FlowDots() []Dot {
	r := p.FlowRow()
	c := r.Mid()
	dots := make([]Dot, len(p.Flow.Pathways))
	for i, pw := range p.Flow.Pathways {
		dots[i] = Dot{Pos: pw.Resolve(c, r.Amplitude(), p.period), Radius: r.DotRadius(), Index: i}
	}
	return dots
}

// ParticleDots positions the whole population for the current period.
// Index refers to Flow.Particles.
func (p *Pathways) ParticleDots() []Dot {
	r := p.ParticleRow()
	c := r.Mid()
	dots := make([]Dot, len(p.Flow.Particles))
	for i, pt := range p.Flow.Particles {
		dots[i] = Dot{Pos: pt.Position(c, r.Amplitude(), p.period), Radius: r.DotRadius(), Index: i}
	}
	return dots
}
