package spread

import (
	"github.com/Mearkatz/spreading-colors-ca/internal/core"
	"github.com/Mearkatz/spreading-colors-ca/pkg/random"
)

// Mode selects the observation cadence of Run. Update semantics are
// identical in both modes.
type Mode int

const (
	// ModeBackground runs sweeps with nothing happening between them.
	ModeBackground Mode = iota
	// ModeAnimated invokes the frame callback before every sweep.
	ModeAnimated
)

// Simulation drives repeated sweeps over a grid until one full sweep commits
// zero spreads. That test detects both a fully alive grid and a stuck one
// where the remaining dead cells border no live cell, which the naive
// "any dead cell remains" check would spin on forever.
type Simulation struct {
	cfg  Config
	grid *Grid
	rng  *random.RNG

	sweeps int
	done   bool
}

// NewSimulation validates cfg and allocates the grid. Call Reset to seed the
// starting cells before stepping.
func NewSimulation(cfg Config) (*Simulation, error) {
	g, err := New(cfg.Width, cfg.Height, cfg.Colorshift, cfg.SpreadChance)
	if err != nil {
		return nil, err
	}
	return &Simulation{cfg: cfg, grid: g, rng: random.New(cfg.Seed)}, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "spread" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size {
	return core.Size{W: s.grid.Width(), H: s.grid.Height()}
}

// Grid exposes the simulation state for rendering and export.
func (s *Simulation) Grid() *Grid { return s.grid }

// Sweeps reports how many sweeps have run since the last Reset.
func (s *Simulation) Sweeps() int { return s.sweeps }

// Done reports whether a sweep has completed without committing any spread.
func (s *Simulation) Done() bool { return s.done }

// WritePixels renders the current state as RGBA into buf.
func (s *Simulation) WritePixels(buf []byte) { s.grid.WritePixels(buf) }

// Reset clears the grid and seeds the configured number of orphan cells from
// a fresh generator for the given seed. A zero seed falls back to the
// configured one.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = random.New(seed)
	s.grid.Clear()
	for i := 0; i < s.cfg.StartingCells; i++ {
		s.grid.SpawnOrphan(s.rng)
	}
	s.sweeps = 0
	s.done = false
}

// Step runs one row-major sweep over the interior, giving every live cell
// one spread attempt. The grid is mutated in place, so spreads committed
// early in a sweep are visible to later coordinates of the same sweep.
// Returns the number of committed spreads and marks the simulation done when
// that number is zero.
func (s *Simulation) Step() int {
	g := s.grid
	committed := 0
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			if g.alive[g.idx(y, x)] && g.AttemptSpread(y, x, s.rng) {
				committed++
			}
		}
	}
	s.sweeps++
	if committed == 0 {
		s.done = true
	}
	return committed
}

// Run sweeps until termination and returns the final grid. In ModeAnimated
// the frame callback runs before every sweep, including the terminal one.
func (s *Simulation) Run(mode Mode, frame func()) *Grid {
	for !s.done {
		if mode == ModeAnimated && frame != nil {
			frame()
		}
		s.Step()
	}
	return s.grid
}
