package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/sand-particles/internal/audio"
	"github.com/iburimskiy/sand-particles/internal/config"
	"github.com/iburimskiy/sand-particles/internal/scene"
)

var (
	lightGray = color.RGBA{R: 204, G: 204, B: 204, A: 255}
	gray      = color.RGBA{R: 136, G: 136, B: 136, A: 255}
	hintGray  = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// PathwayScreen shows the background pathways, their flow, and the particle
// population. A click regenerates the background pathways.
type PathwayScreen struct {
	state  *scene.Pathways
	player *audio.Player
	face   text.Face

	now     func() time.Time
	clicked func() bool
}

// NewPathwayScreen builds the screen. player may be nil.
func NewPathwayScreen(r *rand.Rand, cfg config.Pathways, player *audio.Player) *PathwayScreen {
	Logger().Info("pathway screen", "curves", cfg.Curves, "particles", cfg.Particles, "speed", cfg.Speed)
	return &PathwayScreen{
		state:   scene.NewPathways(r, cfg.Curves, cfg.Particles, cfg.Speed, config.WindowWidth),
		player:  player,
		face:    text.NewGoXFace(basicfont.Face7x13),
		now:     time.Now,
		clicked: justClicked,
	}
}

func justClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (s *PathwayScreen) Update() error {
	if s.clicked() {
		s.state.Click()
		Logger().Debug("pathways regenerated", "count", len(s.state.Flow.Pathways))
	}
	s.state.Tick(s.now())
	return nil
}

func (s *PathwayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.state.Resize(float64(screen.Bounds().Dx()))

	for i, r := range s.state.GraphRows() {
		x0, x1 := float32(r.X), float32(r.X+r.W)
		mid := float32(r.Y + r.H*0.5)
		vector.StrokeLine(screen, x0, mid, x1, mid, 1, color.White, false)
		vector.StrokeLine(screen, x0, float32(r.Y), x1, float32(r.Y), 1, gray, false)
		vector.StrokeLine(screen, x0, float32(r.Y+r.H), x1, float32(r.Y+r.H), 1, gray, false)
		strokePolyline(screen, s.state.Graph(i), 1, color.White)
	}

	for i := range s.state.Flow.Pathways {
		strokePolyline(screen, s.state.FlowPath(i), 1, lightGray)
	}
	for _, d := range s.state.FlowDots() {
		fillCircle(screen, d.Pos, d.Radius, color.White)
	}

	for _, d := range s.state.ParticleDots() {
		fillCircle(screen, d.Pos, d.Radius, s.state.Flow.Particles[d.Index].Color)
	}

	s.drawHint(screen)
}

func (s *PathwayScreen) drawHint(screen *ebiten.Image) {
	r := s.state.ParticleRow()
	y := r.Y + r.H + scene.RowPadding

	elapsed := time.Duration(s.state.Elapsed() * float64(time.Second))
	msg := fmt.Sprintf("click to regenerate pathways  %s", formatDuration(elapsed))
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X, y)
	op.ColorScale.ScaleWithColor(hintGray)
	text.Draw(screen, msg, s.face, op)

	if s.player == nil {
		return
	}
	level := clamp01(s.player.Level() * 4)
	barY := float32(y + 20)
	vector.DrawFilledRect(screen, float32(r.X), barY, float32(100*level), 3, hintGray, false)
}

func (s *PathwayScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close stops the animation and the hiss.
func (s *PathwayScreen) Close() {
	s.state.Stop()
	s.player.Close()
}
