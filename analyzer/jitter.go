package analyzer

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

// Jitter supplies the per-channel noise added to spectrum values.
type Jitter interface {
	NextJitter() float64
}

// JitterAmplitude bounds the uniform noise to [-JitterAmplitude, JitterAmplitude).
const JitterAmplitude = 4.0

// UniformJitter draws uniform noise. It is safe for concurrent use.
type UniformJitter struct {
	mu   sync.Mutex
	dist distuv.Uniform
}

// NewUniformJitter returns a jitter source. A zero seed draws from the global
// generator; any other seed gives a reproducible sequence.
func NewUniformJitter(seed uint64) *UniformJitter {
	u := distuv.Uniform{Min: -JitterAmplitude, Max: JitterAmplitude}
	if seed != 0 {
		u.Src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	return &UniformJitter{dist: u}
}

func (j *UniformJitter) NextJitter() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.dist.Rand()
}

// FixedJitter always returns the same offset. FixedJitter(0) disables noise.
type FixedJitter float64

func (f FixedJitter) NextJitter() float64 {
	return float64(f)
}

// NewJitter returns uniform noise when enabled and no noise otherwise.
func NewJitter(enabled bool, seed uint64) Jitter {
	if !enabled {
		return FixedJitter(0)
	}
	return NewUniformJitter(seed)
}
