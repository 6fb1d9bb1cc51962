package builder

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source the builders draw from. *math/rand/v2.Rand satisfies it.
// Float32 returns a value in [0, 1).
type Rand interface {
	Float32() float32
}

// NewRand returns a PCG-backed source. Seed 0 uses a time-based seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
