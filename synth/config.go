package synth

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/cwbudde/algo-specgen/dsp/ensemble"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("synth: invalid config")

// NoiseKind selects the per-frame noise source.
type NoiseKind int

const (
	// NoiseNormal is Irwin-Hall noise from the spectrum's seeded stream.
	NoiseNormal NoiseKind = iota
	// NoiseUniform is raw [0, 1) noise from the entropy device.
	NoiseUniform
)

// String returns the flag name of the noise kind.
func (k NoiseKind) String() string {
	switch k {
	case NoiseNormal:
		return "normal"
	case NoiseUniform:
		return "uniform"
	default:
		return fmt.Sprintf("NoiseKind(%d)", int(k))
	}
}

// ParseNoiseKind parses "normal" or "uniform".
func ParseNoiseKind(s string) (NoiseKind, error) {
	switch strings.ToLower(s) {
	case "normal":
		return NoiseNormal, nil
	case "uniform":
		return NoiseUniform, nil
	default:
		return 0, fmt.Errorf("%w: unknown noise kind %q", ErrInvalidConfig, s)
	}
}

// EnsembleMode selects where each spectrum's pipeline comes from.
type EnsembleMode int

const (
	// EnsembleRandom generates a fresh ensemble for every spectrum.
	EnsembleRandom EnsembleMode = iota
	// EnsembleShared generates one ensemble from the base seed for all spectra.
	EnsembleShared
	// EnsembleReference uses peak.Reference for all spectra.
	EnsembleReference
)

// String returns the flag name of the mode.
func (m EnsembleMode) String() string {
	switch m {
	case EnsembleRandom:
		return "random"
	case EnsembleShared:
		return "shared"
	case EnsembleReference:
		return "reference"
	default:
		return fmt.Sprintf("EnsembleMode(%d)", int(m))
	}
}

// ParseEnsembleMode parses "random", "shared" or "reference".
func ParseEnsembleMode(s string) (EnsembleMode, error) {
	switch strings.ToLower(s) {
	case "random":
		return EnsembleRandom, nil
	case "shared":
		return EnsembleShared, nil
	case "reference":
		return EnsembleReference, nil
	default:
		return 0, fmt.Errorf("%w: unknown ensemble mode %q", ErrInvalidConfig, s)
	}
}

// Config describes a dataset.
type Config struct {
	// Channels is the axis length; rows per frame.
	Channels int
	// Spectra is the number of spectra (files) produced by Run.
	Spectra int
	// Peaks is the ensemble size in random and shared modes.
	Peaks int
	// FramesMin and FramesMax bound the per-spectrum frame count, [min, max).
	FramesMin int
	FramesMax int

	OutlierProbability float64
	OutlierScale       float64

	Noise      NoiseKind
	NoiseScale float64

	Ensemble EnsembleMode

	// Broadening is the width of the Gaussian instrument response applied to
	// the clean signal. Zero disables it.
	Broadening float64

	Seed    int64
	Workers int
}

// DefaultConfig returns the reference dataset configuration.
func DefaultConfig() Config {
	return Config{
		Channels:           ensemble.DefaultChannels,
		Spectra:            100,
		Peaks:              20,
		FramesMin:          3,
		FramesMax:          12,
		OutlierProbability: 0.01,
		OutlierScale:       30,
		Noise:              NoiseNormal,
		NoiseScale:         1,
		Ensemble:           EnsembleRandom,
		Seed:               1,
		Workers:            runtime.NumCPU(),
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Channels <= 0:
		return fmt.Errorf("%w: channels must be > 0: %d", ErrInvalidConfig, c.Channels)
	case c.Spectra <= 0:
		return fmt.Errorf("%w: spectra must be > 0: %d", ErrInvalidConfig, c.Spectra)
	case c.Peaks < 0:
		return fmt.Errorf("%w: peaks must be >= 0: %d", ErrInvalidConfig, c.Peaks)
	case c.FramesMin <= 0 || c.FramesMax <= c.FramesMin:
		return fmt.Errorf("%w: frame range [%d, %d) is empty", ErrInvalidConfig, c.FramesMin, c.FramesMax)
	case c.OutlierProbability < 0 || c.OutlierProbability > 1:
		return fmt.Errorf("%w: outlier probability must be in [0, 1]: %v", ErrInvalidConfig, c.OutlierProbability)
	case c.OutlierScale < 0:
		return fmt.Errorf("%w: outlier scale must be >= 0: %v", ErrInvalidConfig, c.OutlierScale)
	case c.NoiseScale < 0:
		return fmt.Errorf("%w: noise scale must be >= 0: %v", ErrInvalidConfig, c.NoiseScale)
	case c.Noise != NoiseNormal && c.Noise != NoiseUniform:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Noise)
	case c.Ensemble < EnsembleRandom || c.Ensemble > EnsembleReference:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Ensemble)
	case c.Broadening < 0:
		return fmt.Errorf("%w: broadening must be >= 0: %v", ErrInvalidConfig, c.Broadening)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be > 0: %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
