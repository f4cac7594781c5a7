//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"campfire/internal/app"
	"campfire/internal/core"
	_ "campfire/internal/sims/campfire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	sim := factory(cfg.Sets)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	panel := cfg.Panel
	if panel < 0 {
		panel = 0
	}

	ebiten.SetWindowTitle("campfire — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+panel, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
