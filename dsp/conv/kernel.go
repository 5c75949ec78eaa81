package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Kernel convolves traces of a fixed length with a fixed kernel in a single
// FFT block. The kernel spectrum is computed once at construction.
//
// A Kernel keeps scratch buffers and is not safe for concurrent use; build one
// per goroutine.
type Kernel struct {
	taps      int
	signalLen int
	fftSize   int

	spectrum []complex128
	plan     *algofft.Plan[complex128]

	work []complex128
}

// NewKernel prepares a convolver for kernel taps and traces of signalLen samples.
func NewKernel(taps []float64, signalLen int) (*Kernel, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyKernel
	}
	if signalLen <= 0 {
		return nil, ErrEmptyInput
	}

	fftSize := nextPowerOf2(signalLen + len(taps) - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	k := &Kernel{
		taps:      len(taps),
		signalLen: signalLen,
		fftSize:   fftSize,
		spectrum:  make([]complex128, fftSize),
		plan:      plan,
		work:      make([]complex128, fftSize),
	}

	padded := make([]complex128, fftSize)
	for i, v := range taps {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(k.spectrum, padded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return k, nil
}

// Len returns the number of kernel taps.
func (k *Kernel) Len() int { return k.taps }

// FFTSize returns the transform length used internally.
func (k *Kernel) FFTSize() int { return k.fftSize }

// Apply convolves signal with the kernel and trims the result to mode.
// signal must have the length the Kernel was built for.
func (k *Kernel) Apply(signal []float64, mode Mode) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(signal) != k.signalLen {
		return nil, fmt.Errorf("%w: kernel built for %d samples, got %d", ErrLengthMismatch, k.signalLen, len(signal))
	}

	for i := range k.work {
		k.work[i] = 0
	}
	for i, v := range signal {
		k.work[i] = complex(v, 0)
	}

	if err := k.plan.Forward(k.work, k.work); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	for i := range k.work {
		k.work[i] *= k.spectrum[i]
	}
	if err := k.plan.Inverse(k.work, k.work); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	full := make([]float64, k.signalLen+k.taps-1)
	for i := range full {
		full[i] = real(k.work[i])
	}
	return trimToMode(full, k.signalLen, k.taps, mode), nil
}
