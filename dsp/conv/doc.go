// Package conv provides linear convolution of channel traces with short
// kernels, used to model instrument line broadening of synthesized spectra.
//
// Two strategies are offered:
//
//   - Direct: O(N*M) time-domain convolution, best for kernels of a few dozen taps
//   - Kernel: a reusable FFT-based convolver for a fixed kernel and trace length
//
// For one-shot use, Convolve picks between them by kernel length:
//
//	out, err := conv.Convolve(trace, taps, conv.ModeSame)
//
// For repeated use with the same kernel, build a Kernel once:
//
//	k, err := conv.NewKernel(taps, len(trace))
//	out, err := k.Apply(trace, conv.ModeSame)
package conv
