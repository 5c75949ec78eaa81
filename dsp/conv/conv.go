package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// Mode specifies the output extent of a convolution.
type Mode int

const (
	// ModeFull returns the full result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns len(a) samples centered on the kernel, so a symmetric
	// kernel does not shift features of a.
	ModeSame

	// ModeValid returns only the samples where a and b fully overlap.
	ModeValid
)

// directThreshold is the longest kernel Convolve handles in the time domain.
const directThreshold = 64

// Direct performs time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution into dst, which must have length
// len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	m := len(b)
	scaled := make([]float64, m)
	for i, ai := range a {
		vecmath.ScaleBlock(scaled, b, ai)
		vecmath.AddBlockInPlace(dst[i:i+m], scaled)
	}
}

// Convolve convolves a with kernel b and trims the result to mode.
// Kernels up to 64 taps use Direct; longer kernels go through the FFT.
func Convolve(a, b []float64, mode Mode) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) <= directThreshold {
		full, err := Direct(a, b)
		if err != nil {
			return nil, err
		}
		return trimToMode(full, len(a), len(b), mode), nil
	}

	k, err := NewKernel(b, len(a))
	if err != nil {
		return nil, err
	}
	return k.Apply(a, mode)
}

// trimToMode extracts the requested portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
