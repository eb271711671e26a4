//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/Mearkatz/spreading-colors-ca/internal/app"
	"github.com/Mearkatz/spreading-colors-ca/internal/spread"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := spread.NewSimulation(cfg.Simulation())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(seed)

	game := app.New(sim, cfg.Scale, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("spreading-colors — " + sim.Name())
	ebiten.SetTPS(cfg.Framerate)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
