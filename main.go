package main

import (
	"os"

	"github.com/iburimskiy/sand-particles/internal/assets"
	"github.com/iburimskiy/sand-particles/internal/config"
	"github.com/iburimskiy/sand-particles/internal/game"
)

func main() {
	cfg, err := game.Boot(config.DefaultFile)
	if err != nil {
		fatal(err)
	}

	bg, err := assets.LoadTitle(cfg.Title.Image)
	if err != nil {
		fatal(err)
	}

	seed := game.Seed(cfg)
	player := game.StartAudio(cfg, seed)
	if err := game.Run(config.TitleWindowTitle, game.NewTitleScreen(bg, cfg.Title, seed, player)); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	game.ReportFatal(config.TitleWindowTitle, err)
	os.Exit(1)
}
