package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Mearkatz/spreading-colors-ca/internal/spread"
)

type paramSet struct {
	spreadChance float64
	colorshift   uint8
}

func (p paramSet) String() string {
	return fmt.Sprintf("spread=%.2f colorshift=%d", p.spreadChance, p.colorshift)
}

type scenarioResult struct {
	params    paramSet
	avgSweeps float64
	coverage  float64
}

func main() {
	width := flag.Int("width", 64, "grid width in cells")
	height := flag.Int("height", 48, "grid height in cells")
	cells := flag.Int("cells", 3, "starting live cells per run")
	runs := flag.Int("runs", 8, "runs to average per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	base := spread.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.StartingCells = *cells
	if _, err := spread.NewSimulation(base); err != nil {
		log.Fatal(err)
	}

	spreadOptions := []float64{0.05, 0.1, 0.25, 0.5, 0.75, 1.0}
	shiftOptions := []uint8{0, 2, 4, 8, 16, 32}

	var sets []paramSet
	for _, chance := range spreadOptions {
		for _, shift := range shiftOptions {
			sets = append(sets, paramSet{spreadChance: chance, colorshift: shift})
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d runs each)\n", len(sets), *workers, *runs)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *runs)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].coverage != all[j].coverage {
			return all[i].coverage > all[j].coverage
		}
		return all[i].avgSweeps < all[j].avgSweeps
	})

	fmt.Printf("\nBest interior coverage (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) coverage=%5.1f%% sweeps=%6.1f params=%s\n",
			i+1, res.coverage*100, res.avgSweeps, res.params)
	}
}

func runScenario(base spread.Config, params paramSet, runs int) scenarioResult {
	cfg := base
	cfg.SpreadChance = params.spreadChance
	cfg.Colorshift = params.colorshift

	interior := float64((cfg.Width - 2) * (cfg.Height - 2))
	var totalSweeps, totalCoverage float64
	for run := 0; run < runs; run++ {
		sim, err := spread.NewSimulation(cfg)
		if err != nil {
			log.Fatal(err)
		}
		sim.Reset(int64(run + 1))
		g := sim.Run(spread.ModeBackground, nil)

		alive := 0
		for y := 1; y < cfg.Height-1; y++ {
			for x := 1; x < cfg.Width-1; x++ {
				if g.IsAlive(y, x) {
					alive++
				}
			}
		}
		totalSweeps += float64(sim.Sweeps())
		totalCoverage += float64(alive) / interior
	}

	return scenarioResult{
		params:    params,
		avgSweeps: totalSweeps / float64(runs),
		coverage:  totalCoverage / float64(runs),
	}
}
