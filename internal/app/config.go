package app

import (
	"flag"

	"github.com/Mearkatz/spreading-colors-ca/internal/spread"
)

// Config represents the command-line parameters shared by the terminal
// runner and the windowed viewer.
type Config struct {
	Width        int
	Height       int
	Cells        int
	Colorshift   int
	SpreadChance float64
	Framerate    int
	Animate      bool
	Preview      bool
	Out          string
	Seed         int64
	Scale        int
}

// NewConfig returns a Config populated with the classic defaults.
func NewConfig() *Config {
	d := spread.DefaultConfig()
	return &Config{
		Width:        d.Width,
		Height:       d.Height,
		Cells:        d.StartingCells,
		Colorshift:   int(d.Colorshift),
		SpreadChance: d.SpreadChance,
		Framerate:    32,
		Animate:      true,
		Scale:        8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Cells, "cells", c.Cells, "number of starting live cells")
	fs.IntVar(&c.Colorshift, "colorshift", c.Colorshift, "maximum per-channel color perturbation")
	fs.Float64Var(&c.SpreadChance, "spread-chance", c.SpreadChance, "probability a live cell spreads each sweep (0.0 to 1.0)")
	fs.IntVar(&c.Framerate, "framerate", c.Framerate, "animation frames per second")
	fs.BoolVar(&c.Animate, "animate", c.Animate, "animate in the terminal while running")
	fs.BoolVar(&c.Preview, "preview", c.Preview, "print the final frame after the run")
	fs.StringVar(&c.Out, "out", c.Out, "save the final frame as a PNG at this path")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "simulation seed, 0 draws one from the clock")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the windowed viewer")
}

// Simulation translates the flag values into a core simulation config.
func (c *Config) Simulation() spread.Config {
	shift := c.Colorshift
	if shift < 0 {
		shift = 0
	}
	if shift > 255 {
		shift = 255
	}
	return spread.Config{
		Width:         c.Width,
		Height:        c.Height,
		StartingCells: c.Cells,
		Colorshift:    uint8(shift),
		SpreadChance:  c.SpreadChance,
		Seed:          c.Seed,
	}
}
