package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHissStaysInRange(t *testing.T) {
	h := NewHiss(3, int(SampleRate))
	buf := make([][2]float64, 8192)
	for round := 0; round < 4; round++ {
		n, ok := h.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
		for _, s := range buf {
			assert.LessOrEqual(t, s[0], 1.0)
			assert.GreaterOrEqual(t, s[0], -1.0)
			assert.LessOrEqual(t, s[1], 1.0)
			assert.GreaterOrEqual(t, s[1], -1.0)
		}
	}
	assert.NoError(t, h.Err())
}

func TestHissIsSeeded(t *testing.T) {
	a, b := NewHiss(9, 44100), NewHiss(9, 44100)
	bufA, bufB := make([][2]float64, 512), make([][2]float64, 512)
	a.Stream(bufA)
	b.Stream(bufB)
	assert.Equal(t, bufA, bufB)
}

func TestMeterSnapshotOrder(t *testing.T) {
	var next float64
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			next++
			samples[i] = [2]float64{next, next}
		}
		return len(samples), true
	})
	m := NewMeter(src, 8)

	m.Stream(make([][2]float64, 5))
	assert.Equal(t, [][2]float64{{3, 3}, {4, 4}, {5, 5}}, m.Snapshot(3))

	m.Stream(make([][2]float64, 6))
	snap := m.Snapshot(100)
	require.Len(t, snap, 8)
	assert.Equal(t, [2]float64{4, 4}, snap[0])
	assert.Equal(t, [2]float64{11, 11}, snap[7])
}

func TestMeterLevel(t *testing.T) {
	silence := beep.Silence(-1)
	m := NewMeter(silence, 16)
	assert.Equal(t, 0.0, m.Level())

	m.Stream(make([][2]float64, 32))
	assert.Equal(t, 0.0, m.Level())

	ctrl, meter := Chain(1, 0)
	ctrl.Stream(make([][2]float64, 4096))
	assert.Greater(t, meter.Level(), 0.0)
}

func TestNilPlayer(t *testing.T) {
	var p *Player
	assert.Equal(t, 0.0, p.Level())
	p.Close()
}
