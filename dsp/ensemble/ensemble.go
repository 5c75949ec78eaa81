// Package ensemble draws randomized peak pipelines.
//
// Each entry is a skewed Gaussian or Lorentzian whose center, amplitude,
// width and steepness are drawn uniformly from [Bounds]. Draws come from one
// explicit random stream, so a given seed always yields the same pipeline.
package ensemble

import (
	"math/rand"

	"github.com/cwbudde/algo-specgen/dsp/peak"
)

// DefaultChannels is the axis length the default center range is sized for.
const DefaultChannels = 1340

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

func (r Range) draw(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Bounds holds the sampling intervals for each drawn parameter.
type Bounds struct {
	Center    Range
	Amplitude Range
	Width     Range
	Steepness Range
}

// DefaultBounds returns the reference intervals for an axis of the given length.
func DefaultBounds(channels int) Bounds {
	return Bounds{
		Center:    Range{0, float64(channels)},
		Amplitude: Range{100, 1100},
		Width:     Range{1, 26},
		Steepness: Range{0, 0.1},
	}
}

// Option configures generation.
type Option func(*Bounds)

// WithChannels sizes the center range to [0, channels).
func WithChannels(channels int) Option {
	return func(b *Bounds) {
		if channels > 0 {
			b.Center = Range{0, float64(channels)}
		}
	}
}

// WithBounds replaces all sampling intervals.
func WithBounds(bounds Bounds) Option {
	return func(b *Bounds) {
		*b = bounds
	}
}

// Kind is one of the four peak classes an ensemble entry can take.
type Kind int

const (
	GaussianLeft Kind = iota
	GaussianRight
	LorentzianLeft
	LorentzianRight
)

// String returns a short class name.
func (k Kind) String() string {
	switch k {
	case GaussianLeft:
		return "gaussian-left"
	case GaussianRight:
		return "gaussian-right"
	case LorentzianLeft:
		return "lorentzian-left"
	default:
		return "lorentzian-right"
	}
}

// kindOf maps a uniform draw to a class with cut points at 0.25, 0.5 and 0.75.
func kindOf(u float64) Kind {
	switch {
	case u < 0.25:
		return GaussianLeft
	case u < 0.5:
		return GaussianRight
	case u < 0.75:
		return LorentzianLeft
	default:
		return LorentzianRight
	}
}

// Generate returns a pipeline of count skewed peaks drawn from a stream
// seeded with seed.
func Generate(count int, seed int64, opts ...Option) peak.Pipeline {
	return GenerateFrom(rand.New(rand.NewSource(seed)), count, opts...)
}

// GenerateFrom draws count skewed peaks from rng and returns them in draw
// order. Per entry the draws are center, amplitude, width, steepness, class.
// A non-positive count yields an empty pipeline.
func GenerateFrom(rng *rand.Rand, count int, opts ...Option) peak.Pipeline {
	b := DefaultBounds(DefaultChannels)
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}

	if count <= 0 {
		return peak.Pipeline{}
	}

	p := make(peak.Pipeline, 0, count)
	for range count {
		center := b.Center.draw(rng)
		amplitude := b.Amplitude.draw(rng)
		width := b.Width.draw(rng)
		k := b.Steepness.draw(rng)
		p = append(p, build(kindOf(rng.Float64()), center, amplitude, width, k))
	}
	return p
}

func build(kind Kind, center, amplitude, width, k float64) peak.Skew {
	switch kind {
	case GaussianLeft:
		return peak.SkewLeft(peak.NewGaussian(center, amplitude, width), k)
	case GaussianRight:
		return peak.SkewRight(peak.NewGaussian(center, amplitude, width), k)
	case LorentzianLeft:
		return peak.SkewLeft(peak.NewLorentzian(center, amplitude, width), k)
	default:
		return peak.SkewRight(peak.NewLorentzian(center, amplitude, width), k)
	}
}

// Classify reports the class of a peak built by this package.
// ok is false for any other kind of peak function.
func Classify(f peak.Function) (kind Kind, ok bool) {
	s, isSkew := f.(peak.Skew)
	if !isSkew {
		return 0, false
	}
	left := s.Direction() == peak.Left
	switch s.Inner().(type) {
	case peak.Gaussian:
		if left {
			return GaussianLeft, true
		}
		return GaussianRight, true
	case peak.Lorentzian:
		if left {
			return LorentzianLeft, true
		}
		return LorentzianRight, true
	}
	return 0, false
}
