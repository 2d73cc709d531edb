package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sand-particles/internal/geom"
	"github.com/iburimskiy/sand-particles/internal/sand"
)

// strokePolyline draws consecutive points as connected segments.
func strokePolyline(dst *ebiten.Image, pts []geom.Vec, width float32, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

func fillCircle(dst *ebiten.Image, p geom.Vec, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(r), clr, true)
}

func drawGrains(dst *ebiten.Image, grains []sand.Grain, clr color.Color) {
	for _, g := range grains {
		fillCircle(dst, g.Pos, g.Radius, clr)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
