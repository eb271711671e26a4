package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Mearkatz/spreading-colors-ca/internal/app"
	"github.com/Mearkatz/spreading-colors-ca/internal/core"
	"github.com/Mearkatz/spreading-colors-ca/internal/render"
	"github.com/Mearkatz/spreading-colors-ca/internal/spread"
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

	term := render.NewTerminal(os.Stdout)
	start := time.Now()

	if cfg.Animate {
		pacer := core.NewFramePacer(cfg.Framerate)
		sim.Run(spread.ModeAnimated, func() {
			term.Clear()
			term.Frame(sim.Grid())
			pacer.Wait()
		})
		term.Clear()
	} else {
		fmt.Println("Running in background")
		sim.Run(spread.ModeBackground, nil)
	}

	fmt.Printf("Finished in %v after %d sweeps (seed %d)\n",
		time.Since(start).Round(time.Millisecond), sim.Sweeps(), seed)

	if cfg.Preview {
		term.Frame(sim.Grid())
	}

	if cfg.Out != "" {
		imgStart := time.Now()
		if err := render.SavePNG(cfg.Out, sim.Grid()); err != nil {
			log.Fatalf("save %s: %v", cfg.Out, err)
		}
		fmt.Printf("Saved %s in %v\n", cfg.Out, time.Since(imgStart).Round(time.Millisecond))
	}
}
