package rng

import (
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Source is a Generator backed by a seeded math/rand source. A fixed seed
// gives a reproducible sequence, which the tests rely on.
type Source struct {
	r *rand.Rand
}

// NewSource returns a Source for the given seed. A seed of zero seeds from
// the current time.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number in [0, n)
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}
