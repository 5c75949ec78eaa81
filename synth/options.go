package synth

import (
	"github.com/cwbudde/algo-specgen/dsp/noise"
	"go.uber.org/zap"
)

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *Synthesizer) {
		s.cfg = cfg
	}
}

// WithChannels sets the axis length.
func WithChannels(n int) Option {
	return func(s *Synthesizer) {
		s.cfg.Channels = n
	}
}

// WithSpectra sets the number of spectra produced by Run.
func WithSpectra(n int) Option {
	return func(s *Synthesizer) {
		s.cfg.Spectra = n
	}
}

// WithPeaks sets the ensemble size.
func WithPeaks(n int) Option {
	return func(s *Synthesizer) {
		s.cfg.Peaks = n
	}
}

// WithFrames sets the frame count range [minFrames, maxFrames).
func WithFrames(minFrames, maxFrames int) Option {
	return func(s *Synthesizer) {
		s.cfg.FramesMin = minFrames
		s.cfg.FramesMax = maxFrames
	}
}

// WithOutliers sets the per-channel outlier probability and magnitude factor.
func WithOutliers(probability, scale float64) Option {
	return func(s *Synthesizer) {
		s.cfg.OutlierProbability = probability
		s.cfg.OutlierScale = scale
	}
}

// WithNoise sets the noise kind and its scale.
func WithNoise(kind NoiseKind, scale float64) Option {
	return func(s *Synthesizer) {
		s.cfg.Noise = kind
		s.cfg.NoiseScale = scale
	}
}

// WithEnsemble sets the ensemble mode.
func WithEnsemble(mode EnsembleMode) Option {
	return func(s *Synthesizer) {
		s.cfg.Ensemble = mode
	}
}

// WithBroadening sets the instrument response width. Zero disables it.
func WithBroadening(width float64) Option {
	return func(s *Synthesizer) {
		s.cfg.Broadening = width
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(s *Synthesizer) {
		s.cfg.Seed = seed
	}
}

// WithWorkers sets the worker pool size used by Run.
func WithWorkers(n int) Option {
	return func(s *Synthesizer) {
		s.cfg.Workers = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Synthesizer) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEntropy sets the source used for uniform noise.
func WithEntropy(src noise.Source) Option {
	return func(s *Synthesizer) {
		if src != nil {
			s.entropy = src
		}
	}
}
