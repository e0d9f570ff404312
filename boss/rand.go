package boss

import (
	"math"
	"math/rand"
	"time"
)

// Rand is the number source behind every random choice the boss makes.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (b *Boss) randomAngle() float64 {
	return b.rng.Float64() * 2 * math.Pi
}
