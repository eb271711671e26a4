package spread

import (
	"slices"
	"testing"
)

func mustSimulation(t *testing.T, cfg Config) *Simulation {
	t.Helper()
	s, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}

func TestSeededFillPropagatesExactColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.StartingCells = 0
	cfg.Colorshift = 0
	cfg.SpreadChance = 1

	s := mustSimulation(t, cfg)
	s.Reset(21)
	seed := Color{R: 40, G: 120, B: 240}
	s.Grid().PlaceCell(2, 2, seed)

	g := s.Run(ModeBackground, nil)

	if !s.Done() {
		t.Fatal("Run returned before termination")
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if !g.IsAlive(y, x) {
				t.Fatalf("interior cell (%d,%d) still dead after termination", y, x)
			}
			if g.ColorAt(y, x) != seed {
				t.Fatalf("cell (%d,%d) color %v, want exact copy %v", y, x, g.ColorAt(y, x), seed)
			}
		}
	}
	for i := 0; i < 5; i++ {
		for _, at := range [][2]int{{0, i}, {4, i}, {i, 0}, {i, 4}} {
			if g.IsAlive(at[0], at[1]) {
				t.Fatalf("border cell (%d,%d) became alive", at[0], at[1])
			}
		}
	}
}

func TestZeroSpreadChanceTerminatesOnFirstSweep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 9
	cfg.StartingCells = 4
	cfg.SpreadChance = 0

	s := mustSimulation(t, cfg)
	s.Reset(22)

	alive := append([]bool(nil), s.grid.alive...)
	colors := append([]Color(nil), s.grid.colors...)

	s.Run(ModeBackground, nil)

	if !s.Done() {
		t.Fatal("simulation never terminated")
	}
	if s.Sweeps() != 1 {
		t.Fatalf("terminated after %d sweeps, want 1", s.Sweeps())
	}
	if !slices.Equal(alive, s.grid.alive) {
		t.Fatal("liveness changed with zero spread chance")
	}
	if !slices.Equal(colors, s.grid.colors) {
		t.Fatal("colors changed with zero spread chance")
	}
}

func TestCertainChanceFillsWithinSweepBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 8
	cfg.StartingCells = 1
	cfg.SpreadChance = 1

	s := mustSimulation(t, cfg)
	s.Reset(23)
	g := s.Run(ModeBackground, nil)

	interior := (cfg.Width - 2) * (cfg.Height - 2)
	// Every sweep before the terminal one commits at least one spread, so
	// termination takes at most interior+1 sweeps.
	if s.Sweeps() > interior+1 {
		t.Fatalf("took %d sweeps, bound is %d", s.Sweeps(), interior+1)
	}
	for y := 1; y < cfg.Height-1; y++ {
		for x := 1; x < cfg.Width-1; x++ {
			if !g.IsAlive(y, x) {
				t.Fatalf("interior cell (%d,%d) dead after certain-chance run", y, x)
			}
		}
	}
}

func TestLivenessMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 12
	cfg.StartingCells = 3
	cfg.SpreadChance = 0.4

	s := mustSimulation(t, cfg)
	s.Reset(24)

	prev := append([]bool(nil), s.grid.alive...)
	for !s.Done() {
		s.Step()
		for i, wasAlive := range prev {
			if wasAlive && !s.grid.alive[i] {
				t.Fatalf("cell %d died during sweep %d", i, s.Sweeps())
			}
		}
		copy(prev, s.grid.alive)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 14
	cfg.StartingCells = 2

	s := mustSimulation(t, cfg)
	s.Reset(777)
	s.Run(ModeBackground, nil)
	alive := append([]bool(nil), s.grid.alive...)
	colors := append([]Color(nil), s.grid.colors...)
	sweeps := s.Sweeps()

	s.Reset(777)
	s.Run(ModeBackground, nil)

	if s.Sweeps() != sweeps {
		t.Fatalf("rerun took %d sweeps, first run took %d", s.Sweeps(), sweeps)
	}
	if !slices.Equal(alive, s.grid.alive) {
		t.Fatal("rerun with same seed produced different liveness")
	}
	if !slices.Equal(colors, s.grid.colors) {
		t.Fatal("rerun with same seed produced different colors")
	}
}

func TestModesShareUpdateSemantics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 14
	cfg.Height = 10
	cfg.StartingCells = 2

	background := mustSimulation(t, cfg)
	background.Reset(31)
	background.Run(ModeBackground, nil)

	frames := 0
	animated := mustSimulation(t, cfg)
	animated.Reset(31)
	animated.Run(ModeAnimated, func() { frames++ })

	if frames != animated.Sweeps() {
		t.Fatalf("animated mode rendered %d frames over %d sweeps", frames, animated.Sweeps())
	}
	if !slices.Equal(background.grid.alive, animated.grid.alive) {
		t.Fatal("modes diverged on liveness")
	}
	if !slices.Equal(background.grid.colors, animated.grid.colors) {
		t.Fatal("modes diverged on colors")
	}
}

func TestNewSimulationRejectsBadDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 2
	if _, err := NewSimulation(cfg); err == nil {
		t.Fatal("NewSimulation accepted a 2-wide grid")
	}
}
