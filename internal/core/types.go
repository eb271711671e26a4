package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewer app needs from a simulation: reseed it,
// advance it one sweep at a time, and read back an RGBA frame.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() int
	Done() bool
	WritePixels(buf []byte)
}
