package spread

import (
	"fmt"

	"github.com/Mearkatz/spreading-colors-ca/pkg/random"
)

// Coord addresses a single cell as (row, column), zero-indexed.
type Coord struct {
	Y, X int
}

// Grid stores liveness and color state in two co-indexed row-major buffers.
// The outermost ring of cells is a permanent dead border: spreads start and
// land only on interior coordinates, so neighbor lookups never leave the
// buffer. Liveness is monotonic; a cell never dies.
type Grid struct {
	w, h int

	colorshift   uint8
	spreadChance float64

	alive  []bool
	colors []Color

	scratch []Coord
}

// New allocates an all-dead grid with zeroed colors. Width and height must
// each be at least 3 so a non-empty interior exists behind the border ring.
func New(width, height int, colorshift uint8, spreadChance float64) (*Grid, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("grid %dx%d has no interior, need at least 3x3", width, height)
	}
	total := width * height
	return &Grid{
		w:            width,
		h:            height,
		colorshift:   colorshift,
		spreadChance: spreadChance,
		alive:        make([]bool, total),
		colors:       make([]Color, total),
		scratch:      make([]Coord, 0, 8),
	}, nil
}

// Width returns the grid width including the border ring.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height including the border ring.
func (g *Grid) Height() int { return g.h }

func (g *Grid) idx(y, x int) int { return y*g.w + x }

// IsAlive reports the liveness of the cell at (y, x).
func (g *Grid) IsAlive(y, x int) bool { return g.alive[g.idx(y, x)] }

// ColorAt returns the color of the cell at (y, x). The value is meaningful
// only while the cell is alive; dead cells read back as zero.
func (g *Grid) ColorAt(y, x int) Color { return g.colors[g.idx(y, x)] }

// PlaceCell marks the cell at (y, x) alive and assigns its color. An
// out-of-range coordinate is a caller bug and panics.
func (g *Grid) PlaceCell(y, x int, c Color) {
	i := g.idx(y, x)
	g.alive[i] = true
	g.colors[i] = c
}

// Clear kills every cell and zeroes every color.
func (g *Grid) Clear() {
	for i := range g.alive {
		g.alive[i] = false
		g.colors[i] = Color{}
	}
}

// SpawnOrphan places a live cell with a random color at a random interior
// coordinate and returns where it landed. Landing on an already-live cell
// overwrites its color and keeps it alive.
func (g *Grid) SpawnOrphan(rng *random.RNG) Coord {
	x := 1 + rng.IntN(g.w-2)
	y := 1 + rng.IntN(g.h-2)
	g.PlaceCell(y, x, RandomColor(rng))
	return Coord{Y: y, X: x}
}

// DeadNeighbors collects the dead cells in the Moore neighborhood of (y, x).
// The coordinate must be interior; the border ring guarantees all eight
// neighbors are in range. The returned slice is reused by the next call.
func (g *Grid) DeadNeighbors(y, x int) []Coord {
	dead := g.scratch[:0]
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			if yy == y && xx == x {
				continue
			}
			if !g.alive[g.idx(yy, xx)] {
				dead = append(dead, Coord{Y: yy, X: xx})
			}
		}
	}
	g.scratch = dead
	return dead
}

// AttemptSpread gives the live cell at (y, x) one chance to convert a dead
// neighbor into a child carrying a shifted copy of its color. The target is
// chosen before the probability draw, so a rejected attempt still consumes
// the selection draw. Reports whether a spread was committed.
func (g *Grid) AttemptSpread(y, x int, rng *random.RNG) bool {
	dead := g.DeadNeighbors(y, x)
	if len(dead) == 0 {
		return false
	}
	target := dead[rng.IntN(len(dead))]
	if rng.Float64() >= g.spreadChance {
		return false
	}
	g.PlaceCell(target.Y, target.X, g.ColorAt(y, x).Shift(g.colorshift, rng))
	return true
}

// WritePixels fills buf with an RGBA frame of the whole grid, border ring
// included. Dead cells render as opaque black. buf must hold at least
// 4*Width*Height bytes.
func (g *Grid) WritePixels(buf []byte) {
	for i, c := range g.colors {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 0xff
	}
}
