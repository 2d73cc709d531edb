// Package geom holds the 2D vector type and the parametric curves sand
// particles travel along.
package geom

import "math"

// Vec is a point or direction on the canvas, in pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Curve is a path parametrized over t, where t in [0,1] covers the finite
// segment. Values outside that range extrapolate.
type Curve interface {
	Length() float64
	Value(t float64) Vec
	Direction(t float64) Vec
	Normal(t float64) Vec
}

// Line is a straight segment from start to end.
type Line struct {
	start  Vec
	end    Vec
	length float64
	dir    Vec
	normal Vec
}

// NewLine returns the segment start→end. The normal is the direction
// rotated by +90° in screen coordinates, so a line pointing along +X has the
// normal (0, 1). A zero-length line has zero direction and normal.
func NewLine(start, end Vec) Line {
	d := end.Sub(start)
	length := d.Len()
	var dir Vec
	if length > 0 {
		dir = d.Scale(1 / length)
	}
	return Line{
		start:  start,
		end:    end,
		length: length,
		dir:    dir,
		normal: Vec{-dir.Y, dir.X},
	}
}

func (l Line) Start() Vec { return l.start }

func (l Line) End() Vec { return l.end }

func (l Line) Length() float64 { return l.length }

func (l Line) Value(t float64) Vec {
	return l.start.Add(l.dir.Scale(t * l.length))
}

func (l Line) Direction(float64) Vec { return l.dir }

func (l Line) Normal(float64) Vec { return l.normal }
