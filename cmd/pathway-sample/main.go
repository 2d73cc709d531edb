// Command pathway-sample shows sand particles following randomized wavy
// pathways. Click the window to regenerate the background pathways.
package main

import (
	"math/rand/v2"
	"os"

	"github.com/iburimskiy/sand-particles/internal/config"
	"github.com/iburimskiy/sand-particles/internal/game"
)

func main() {
	cfg, err := game.Boot(config.DefaultFile)
	if err != nil {
		fatal(err)
	}

	seed := game.Seed(cfg)
	r := rand.New(rand.NewPCG(seed, seed>>1|1))
	player := game.StartAudio(cfg, seed)
	if err := game.Run(config.PathwayWindowTitle, game.NewPathwayScreen(r, cfg.Pathways, player)); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	game.ReportFatal(config.PathwayWindowTitle, err)
	os.Exit(1)
}
