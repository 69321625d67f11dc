package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	// Between returns a value in [lo, hi).
	Between func(lo, hi float64) float64
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Between: func(lo, hi float64) float64 {
			return lo + random.Float64()*(hi-lo)
		},
	}
}
