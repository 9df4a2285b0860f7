package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSource_deterministic(t *testing.T) {
	a := assert.New(t)

	s1 := NewSource(42)
	s2 := NewSource(42)

	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(52), s2.Intn(52))
	}
}

func TestSource_bounds(t *testing.T) {
	a := assert.New(t)

	s := NewSource(0)
	for i := 0; i < 1000; i++ {
		n := s.Intn(10)
		a.GreaterOrEqual(n, 0)
		a.Less(n, 10)
	}
}
