package scene

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/sand-particles/internal/sand"
)

const (
	canvasW = 1280.0
	canvasH = 720.0
)

func TestColumn(t *testing.T) {
	rows := Column(canvasW, 50, 50, 20)
	require.Len(t, rows, 3)
	assert.Equal(t, Rect{X: 20, Y: 20, W: 1240, H: 50}, rows[0])
	assert.Equal(t, Rect{X: 20, Y: 110, W: 1240, H: 50}, rows[1])
	assert.Equal(t, Rect{X: 20, Y: 200, W: 1240, H: 20}, rows[2])
	assert.InDelta(t, 3.1, rows[0].DotRadius(), 1e-9)
}

func TestCoverFit(t *testing.T) {
	// Wider target: scale to width, crop top and bottom.
	s, dx, dy := CoverFit(640, 640, 1280, 720)
	assert.Equal(t, 2.0, s)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, -280.0, dy)

	// Same aspect: exact fill.
	s, dx, dy = CoverFit(640, 360, 1280, 720)
	assert.Equal(t, 2.0, s)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)

	// Taller target: scale to height, crop the sides.
	s, dx, _ = CoverFit(400, 100, 1280, 720)
	assert.Equal(t, 7.2, s)
	assert.Less(t, dx, 0.0)
	assert.InDelta(t, 1280, 400*s+2*dx, 1e-9)
}

func TestTitleFirstFrameIsEpoch(t *testing.T) {
	title := NewTitle(11, false, sand.DefaultDensity)
	base := time.Unix(100, 0)

	title.Tick(base)
	assert.Equal(t, 0.0, title.Elapsed())

	title.Tick(base.Add(1500 * time.Millisecond))
	assert.InDelta(t, 1.5, title.Elapsed(), 1e-9)

	title.Stop()
	title.Tick(base.Add(5 * time.Second))
	assert.InDelta(t, 1.5, title.Elapsed(), 1e-9)
}

func TestTitleGrains(t *testing.T) {
	title := NewTitle(11, false, sand.DefaultDensity)
	n := sand.Slots(Diagonal(canvasW, canvasH).Length(), sand.DefaultDensity)

	g := title.Grains(canvasW, canvasH)
	assert.Len(t, g, n*sand.GrainsPerSlot)
	assert.Equal(t, g, title.Grains(canvasW, canvasH))
}

func TestTitleJitterModes(t *testing.T) {
	base := time.Unix(0, 0)
	fixed := NewTitle(11, false, sand.DefaultDensity)
	reroll := NewTitle(11, true, sand.DefaultDensity)
	for _, s := range []*Title{fixed, reroll} {
		s.Tick(base)
		s.Tick(base.Add(time.Second))
	}
	fixedA, rerollA := fixed.Grains(canvasW, canvasH), reroll.Grains(canvasW, canvasH)

	// Same elapsed, one frame later.
	for _, s := range []*Title{fixed, reroll} {
		s.Tick(base.Add(time.Second))
	}
	assert.Equal(t, fixedA, fixed.Grains(canvasW, canvasH))
	assert.NotEqual(t, rerollA, reroll.Grains(canvasW, canvasH))
}

func newTestPathways() *Pathways {
	return NewPathways(rand.New(rand.NewPCG(4, 5)), sand.DefaultPathways, sand.DefaultParticles, 0.03, canvasW)
}

func TestPathwaysLayout(t *testing.T) {
	p := newTestPathways()
	require.Len(t, p.GraphRows(), 3)
	assert.Equal(t, 290.0, p.FlowRow().Y)
	assert.Equal(t, 380.0, p.ParticleRow().Y)
	assert.Equal(t, ParticleHeight, p.ParticleRow().H)

	for i := range p.Flow.Pathways {
		assert.Len(t, p.Graph(i), sand.DefaultSteps+1)
		assert.Len(t, p.FlowPath(i), sand.DefaultSteps+1)
	}
}

func TestPathwaysPeriod(t *testing.T) {
	p := newTestPathways()
	base := time.Unix(0, 0)

	p.Tick(base)
	assert.Equal(t, 0.0, p.Period())

	p.Tick(base.Add(10 * time.Second))
	assert.InDelta(t, 0.3, p.Period(), 1e-9)

	p.Tick(base.Add(40 * time.Second))
	assert.InDelta(t, 0.2, p.Period(), 1e-9)
}

func TestPathwaysDots(t *testing.T) {
	p := newTestPathways()
	p.Tick(time.Unix(0, 0))
	p.Tick(time.Unix(10, 0))

	flow := p.FlowDots()
	require.Len(t, flow, 3)
	fr := p.FlowRow()
	for i, d := range flow {
		want := p.Flow.Pathways[i].Resolve(fr.Mid(), fr.Amplitude(), p.Period())
		assert.Equal(t, want, d.Pos)
		assert.Equal(t, fr.DotRadius(), d.Radius)
	}

	dots := p.ParticleDots()
	require.Len(t, dots, sand.DefaultParticles)
	pr := p.ParticleRow()
	for i, d := range dots {
		pt := p.Flow.Particles[i]
		assert.Equal(t, pt.Position(pr.Mid(), pr.Amplitude(), p.Period()), d.Pos)
	}
}

func TestClickRegeneratesOnlyBackground(t *testing.T) {
	p := newTestPathways()
	oldPathways := append([]*sand.Pathway(nil), p.Flow.Pathways...)
	oldParticles := append([]sand.Particle(nil), p.Flow.Particles...)
	oldGraph := p.Graph(0)

	p.Click()

	require.Len(t, p.Flow.Pathways, 3)
	for i := range oldPathways {
		assert.NotSame(t, oldPathways[i], p.Flow.Pathways[i])
	}
	assert.NotEqual(t, oldGraph, p.Graph(0))
	assert.Equal(t, oldParticles, p.Flow.Particles)
}
