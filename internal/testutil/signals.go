package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-specgen/dsp/core"
)

// DeterministicNoise generates values in [-amplitude, amplitude] from a fixed
// seed, for use as reproducible per-channel offsets.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given channel.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued trace.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	core.Fill(out, value)
	return out
}

// Sum returns the plain left-to-right sum of data.
func Sum(data []float64) float64 {
	s := 0.0
	for _, v := range data {
		s += v
	}
	return s
}
