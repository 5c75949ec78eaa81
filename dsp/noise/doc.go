// Package noise supplies the per-channel perturbation sequences added to
// synthesized spectra.
//
// Two sources are provided. [ApproximateNormal] builds pseudo-normal values by
// summing twelve uniform draws and subtracting six (the Irwin-Hall
// approximation: mean 0, variance 1, support [-6, 6]); it is kept in this exact
// form so that seeded datasets stay reproducible. [Entropy] reads raw uniform
// values in [0, 1) from the operating system's entropy device and is safe for
// concurrent use.
package noise
