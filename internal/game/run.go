// Package game wires the sand scenes into Ebitengine windows.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/sand-particles/internal/audio"
	"github.com/iburimskiy/sand-particles/internal/config"
)

// Screen is a game that releases its resources once the loop ends.
type Screen interface {
	ebiten.Game
	Close()
}

// Boot loads the settings file and installs a stderr logger at the
// configured level.
func Boot(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level})))
	for _, w := range cfg.Warnings() {
		Logger().Warn("config", "file", path, "warning", w)
	}
	return cfg, nil
}

// Seed returns the configured seed, or one derived from the clock when the
// setting is 0.
func Seed(cfg *config.Config) uint64 {
	if cfg.Title.Seed != 0 {
		return uint64(cfg.Title.Seed)
	}
	return uint64(time.Now().UnixMilli())
}

// StartAudio begins the hiss when enabled. Failing to open the speaker only
// costs the sound, so it is logged and a nil player returned.
func StartAudio(cfg *config.Config, seed uint64) *audio.Player {
	if !cfg.Audio.Enabled {
		return nil
	}
	p, err := audio.Start(seed, cfg.Audio.Volume)
	if err != nil {
		Logger().Warn("audio disabled", "err", err)
		return nil
	}
	Logger().Info("audio started", "volume", cfg.Audio.Volume)
	return p
}

// Run opens the fixed-size window and blocks until it is closed.
func Run(title string, s Screen) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	defer s.Close()

	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run %q: %w", title, err)
	}
	return nil
}

// ReportFatal logs err and shows it in a native dialog. The caller exits.
func ReportFatal(title string, err error) {
	Logger().Error("fatal", "err", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", title, err)
	if derr := zenity.Error(err.Error(), zenity.Title(title), zenity.ErrorIcon); derr != nil {
		Logger().Debug("error dialog unavailable", "err", derr)
	}
}
