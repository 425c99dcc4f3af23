package rng

import "math/rand"

// Seeded is a deterministic generator backed by math/rand
// It must only be used in tests
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a deterministic generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a number in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
