package geom

import (
	"math/rand/v2"
	"time"
)

// Source is the random stream consumed by procedural generation and shake.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed derives one from the
// wall clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1)))
}

// Sequence replays fixed values in order and wraps around. Tests use it to
// pin procedural output.
type Sequence struct {
	Values []float64
	i      int
}

// Float64 returns the next value, or 0 for an empty sequence.
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.i%len(s.Values)]
	s.i++
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int { return s.i }
