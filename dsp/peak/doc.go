// Package peak provides analytic peak shapes and their composition into
// pipelines that synthesize one-dimensional spectra.
//
// Every shape implements [Function]: Evaluate(x, y0) returns y0 plus the
// shape's contribution at channel position x, and EvaluateBlock does the same
// elementwise over a whole channel axis. Shapes are immutable values; evaluation
// has no hidden state, so the same inputs always produce the same output.
//
// # Shapes
//
//   - [Gaussian]: amplitude * exp(-0.5*((x-center)/width)^2) / sqrt(2*pi*width^2)
//   - [Lorentzian]: amplitude / (pi*width*(1 + ((x-center)/width)^2))
//   - [Skew]: multiplies an inner shape by a logistic mask centered on the
//     inner shape's center. [Right] keeps the right flank, [Left] keeps the left.
//
// A width <= 0 is not checked; it yields NaN or Inf results.
//
// # Pipelines
//
// A [Pipeline] folds its members left to right, each consuming the running
// offset produced by the previous one. Because every member only adds its own
// isolated contribution, the fold equals the plain sum of contributions plus
// the initial offset, for any member order:
//
//	p := peak.Pipeline{
//		peak.SkewLeft(peak.NewGaussian(1000, 6, 110), 0.18),
//		peak.SkewRight(peak.NewLorentzian(200, 6, 50), 0.01),
//	}
//	y := p.Evaluate(500, 0)
//
// EvaluateBlock runs each member over the full axis before moving on to the
// next member and matches the scalar fold for every channel.
package peak
