package spread

// Config controls the grid dimensions and the spreading rule.
type Config struct {
	Width  int
	Height int

	// StartingCells is how many orphan cells Reset seeds at random interior
	// coordinates.
	StartingCells int

	// Colorshift is the maximum per-channel perturbation a child color can
	// receive from its parent. Zero means exact color propagation.
	Colorshift uint8

	// SpreadChance is the probability in [0, 1] that a live cell commits a
	// spread attempt during a sweep.
	SpreadChance float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         32,
		Height:        16,
		StartingCells: 1,
		Colorshift:    4,
		SpreadChance:  0.5,
		Seed:          1337,
	}
}
