package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-specgen/dsp/conv"
	"github.com/cwbudde/algo-specgen/dsp/core"
	"github.com/cwbudde/algo-specgen/dsp/ensemble"
	"github.com/cwbudde/algo-specgen/dsp/noise"
	"github.com/cwbudde/algo-specgen/dsp/peak"
	"github.com/cwbudde/algo-specgen/sink"
	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"
)

// Errors recorded for a failed spectrum.
var (
	ErrOpen  = errors.New("synth: open destination")
	ErrNoise = errors.New("synth: read noise")
	ErrClose = errors.New("synth: close destination")
)

// Synthesizer renders spectra for one Config. It is safe for concurrent use;
// every call to Spectrum owns its random stream and buffers.
type Synthesizer struct {
	cfg     Config
	log     *zap.Logger
	entropy noise.Source

	axis   []float64
	shared peak.Pipeline
	taps   []float64
}

// New validates the configuration and returns a Synthesizer.
func New(opts ...Option) (*Synthesizer, error) {
	s := &Synthesizer{
		cfg: DefaultConfig(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if s.entropy == nil && s.cfg.Noise == NoiseUniform {
		s.entropy = noise.NewEntropy()
	}

	s.axis = core.Axis(s.cfg.Channels)
	switch s.cfg.Ensemble {
	case EnsembleShared:
		s.shared = ensemble.Generate(s.cfg.Peaks, s.cfg.Seed, ensemble.WithChannels(s.cfg.Channels))
	case EnsembleReference:
		s.shared = peak.Reference()
	}
	if s.cfg.Broadening > 0 {
		s.taps = BroadeningKernel(s.cfg.Broadening)
	}
	return s, nil
}

// Config returns the validated configuration.
func (s *Synthesizer) Config() Config { return s.cfg }

// Pipeline returns the pipeline spectrum index is rendered from.
func (s *Synthesizer) Pipeline(index int) peak.Pipeline {
	return s.pipeline(s.stream(index))
}

func (s *Synthesizer) stream(index int) *rand.Rand {
	return rand.New(rand.NewSource(StreamSeed(s.cfg.Seed, index)))
}

func (s *Synthesizer) pipeline(rng *rand.Rand) peak.Pipeline {
	if s.shared != nil {
		return s.shared
	}
	return ensemble.GenerateFrom(rng, s.cfg.Peaks, ensemble.WithChannels(s.cfg.Channels))
}

// Spectrum renders spectrum index into w. Frames are written back to back,
// rows numbered 1..Channels within each frame. Row write failures are logged
// and counted; the remaining rows are still written. The writer is not
// closed.
func (s *Synthesizer) Spectrum(index int, w sink.RowWriter) (Summary, error) {
	return s.spectrum(index, "", w)
}

// spectrum is Spectrum with the destination name used in row failure logs.
func (s *Synthesizer) spectrum(index int, dest string, w sink.RowWriter) (Summary, error) {
	rng := s.stream(index)
	p := s.pipeline(rng)
	frames := s.cfg.FramesMin + rng.Intn(s.cfg.FramesMax-s.cfg.FramesMin)

	n := s.cfg.Channels
	clean, err := s.clean(p)
	if err != nil {
		return Summary{}, err
	}

	acc := newAccumulator(frames * n)
	offset := make([]float64, n)
	values := make([]float64, n)

	for frame := range frames {
		if err := s.noise(offset, rng); err != nil {
			return acc.summary(), fmt.Errorf("%w: spectrum %d frame %d: %w", ErrNoise, index, frame, err)
		}

		if clean != nil {
			vecmath.AddBlock(values, offset, clean)
		} else {
			p.EvaluateBlock(values, s.axis, offset)
		}
		acc.outliers += injectOutliers(values, rng, s.cfg.OutlierProbability, s.cfg.OutlierScale)

		for c, v := range values {
			if err := w.WriteRow(c+1, v); err != nil {
				acc.failedRows++
				s.log.Warn("row write failed",
					zap.Int("spectrum", index),
					zap.String("destination", dest),
					zap.Int("frame", frame),
					zap.Int("row", c+1),
					zap.Error(err),
				)
				continue
			}
			acc.add(v)
		}
		acc.frames++
	}

	return acc.summary(), nil
}

// clean returns the broadened noise-free signal, or nil when broadening is off.
func (s *Synthesizer) clean(p peak.Pipeline) ([]float64, error) {
	if s.taps == nil {
		return nil, nil
	}
	signal, err := p.Render(s.axis, make([]float64, len(s.axis)))
	if err != nil {
		return nil, err
	}
	k, err := conv.NewKernel(s.taps, len(signal))
	if err != nil {
		return nil, fmt.Errorf("synth: broadening: %w", err)
	}
	return k.Apply(signal, conv.ModeSame)
}

// noise fills dst with one frame of scaled noise.
func (s *Synthesizer) noise(dst []float64, rng *rand.Rand) error {
	switch s.cfg.Noise {
	case NoiseUniform:
		u, err := s.entropy.Uniform(len(dst))
		if err != nil {
			return err
		}
		vecmath.ScaleBlock(dst, u, s.cfg.NoiseScale)
	default:
		noise.ApproximateNormalInto(dst, rng)
		vecmath.ScaleBlockInPlace(dst, s.cfg.NoiseScale)
	}
	return nil
}

// injectOutliers replaces values[c] with |values[c]|*scale whenever a uniform
// draw lands in the top probability mass of [0, 1). One draw is made per
// channel regardless of probability.
func injectOutliers(values []float64, rng *rand.Rand, probability, scale float64) int {
	threshold := 1 - probability
	count := 0
	for c, v := range values {
		if rng.Float64() >= threshold {
			values[c] = math.Abs(v) * scale
			count++
		}
	}
	return count
}

// BroadeningKernel returns a unit-area Gaussian of the given width sampled at
// integer offsets within four widths of the center. The length is odd so
// same-mode convolution does not shift peaks.
func BroadeningKernel(width float64) []float64 {
	half := int(math.Ceil(4 * width))
	g := peak.NewGaussian(float64(half), 1, width)

	taps := make([]float64, 2*half+1)
	sum := 0.0
	for i := range taps {
		taps[i] = g.Evaluate(float64(i), 0)
		sum += taps[i]
	}
	vecmath.ScaleBlockInPlace(taps, 1/sum)
	return taps
}
