package simulation

import (
	"math/rand/v2"
	"time"
)

// RandSource provides the uniform draws used for the obstacle drag.
// It is an explicit dependency so tests can inject deterministic values.
type RandSource interface {
	// UniformFloat64 returns a value in the half-open interval [min, max).
	UniformFloat64(min, max float64) float64
}

type pcgSource struct {
	r *rand.Rand
}

// NewRandSource returns a time seeded source. Not safe for concurrent use,
// which matches the single caller model of Race.
func NewRandSource() RandSource {
	now := uint64(time.Now().UnixNano())
	return &pcgSource{r: rand.New(rand.NewPCG(now, now>>32))}
}

// NewSeededSource returns a reproducible source for a given seed.
func NewSeededSource(seed uint64) RandSource {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *pcgSource) UniformFloat64(minVal, maxVal float64) float64 {
	return minVal + s.r.Float64()*(maxVal-minVal)
}
