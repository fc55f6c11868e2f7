package random

import "lukechampine.com/frand"

// Random picks tiles from the bag. It can be mocked for deterministic games.
type Random interface {
	// Intn returns a uniformly random int in [0, n)
	Intn(n int) int
}

// Source implements Random with a fast CSPRNG
type Source struct{}

// New creates a new Source
func New() *Source {
	return &Source{}
}

// Intn returns a uniformly random int in [0, n), or 0 when n <= 0
func (r *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return frand.Intn(n)
}
