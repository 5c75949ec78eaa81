package noise

import (
	"math/rand"
	"time"
)

// irwinHallTerms is the number of uniform draws summed per value.
const irwinHallTerms = 12

// ApproximateNormal returns n Irwin-Hall values drawn from rng.
func ApproximateNormal(rng *rand.Rand, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	ApproximateNormalInto(out, rng)
	return out
}

// ApproximateNormalInto fills dst with Irwin-Hall values drawn from rng.
// Each value consumes exactly twelve draws, in order.
func ApproximateNormalInto(dst []float64, rng *rand.Rand) {
	for i := range dst {
		sum := 0.0
		for range irwinHallTerms {
			sum += rng.Float64()
		}
		dst[i] = sum - irwinHallTerms/2
	}
}

// Generator produces seeded noise sequences.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithTimeSeed seeds the generator from the wall clock.
func WithTimeSeed() Option {
	return func(g *Generator) {
		g.seed = time.Now().UnixNano()
	}
}

// NewGenerator creates a generator. The default seed is 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Seed returns the seed the current stream was started from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed restarts the stream from seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// ApproximateNormal returns the next n Irwin-Hall values.
func (g *Generator) ApproximateNormal(n int) []float64 {
	return ApproximateNormal(g.rng, n)
}

// Uniform returns the next n values in [0, 1). It never fails.
func (g *Generator) Uniform(n int) ([]float64, error) {
	if n <= 0 {
		return []float64{}, nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.rng.Float64()
	}
	return out, nil
}
