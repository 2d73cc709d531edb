package game

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sand-particles/internal/audio"
	"github.com/iburimskiy/sand-particles/internal/config"
	"github.com/iburimskiy/sand-particles/internal/scene"
)

// TitleScreen draws the title image with sand shimmering along the canvas
// diagonal.
type TitleScreen struct {
	state  *scene.Title
	src    image.Image
	bg     *ebiten.Image
	player *audio.Player
	now    func() time.Time
}

// NewTitleScreen builds the screen. player may be nil.
func NewTitleScreen(bg image.Image, cfg config.Title, seed uint64, player *audio.Player) *TitleScreen {
	Logger().Info("title screen", "seed", seed, "jitter", cfg.Jitter, "density", cfg.Density)
	return &TitleScreen{
		state:  scene.NewTitle(seed, cfg.Jitter == config.JitterReroll, cfg.Density),
		src:    bg,
		player: player,
		now:    time.Now,
	}
}

func (s *TitleScreen) Update() error {
	s.state.Tick(s.now())
	return nil
}

func (s *TitleScreen) Draw(screen *ebiten.Image) {
	if s.bg == nil {
		s.bg = ebiten.NewImageFromImage(s.src)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := s.bg.Bounds().Dx(), s.bg.Bounds().Dy()

	scale, dx, dy := scene.CoverFit(float64(bw), float64(bh), float64(w), float64(h))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(dx, dy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.bg, op)

	drawGrains(screen, s.state.Grains(float64(w), float64(h)), color.White)
}

func (s *TitleScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close stops the animation and the hiss.
func (s *TitleScreen) Close() {
	s.state.Stop()
	s.player.Close()
	Logger().Debug("title screen closed", "elapsed", formatDuration(time.Duration(s.state.Elapsed()*float64(time.Second))))
}
