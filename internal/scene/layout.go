// Package scene holds the per-frame state of both screens: what to paint and
// where, independent of the drawing backend.
package scene

import "github.com/iburimskiy/sand-particles/internal/geom"

// RowPadding surrounds every row of the pathway column.
const RowPadding = 20.0

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Mid returns the horizontal line through the middle of r.
func (r Rect) Mid() geom.Line {
	y := r.Y + r.H*0.5
	return geom.NewLine(geom.Vec{X: r.X, Y: y}, geom.Vec{X: r.X + r.W, Y: y})
}

// Amplitude is the wave amplitude that keeps a pathway inside r.
func (r Rect) Amplitude() float64 { return r.H * 0.5 }

// DotRadius is the particle radius used inside r.
func (r Rect) DotRadius() float64 { return max(r.W, r.H) * 0.0025 }

// Column stacks rows of the given heights, each padded on every side.
func Column(width float64, heights ...float64) []Rect {
	rows := make([]Rect, len(heights))
	y := 0.0
	for i, h := range heights {
		y += RowPadding
		rows[i] = Rect{X: RowPadding, Y: y, W: width - 2*RowPadding, H: h}
		y += h + RowPadding
	}
	return rows
}

// CoverFit scales a src-sized image to cover dst entirely, centring the
// overflow. It returns the scale and the translation to apply after scaling.
func CoverFit(srcW, srcH, dstW, dstH float64) (scale, dx, dy float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scale = max(dstW/srcW, dstH/srcH)
	dx = (dstW - srcW*scale) / 2
	dy = (dstH - srcH*scale) / 2
	return scale, dx, dy
}
