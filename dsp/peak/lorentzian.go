package peak

import "math"

// Lorentzian is a Cauchy-shaped peak. At equal width its tails decay much
// slower than a Gaussian's; its area equals the amplitude.
type Lorentzian struct {
	center    float64
	amplitude float64
	width     float64
}

// NewLorentzian returns a Lorentzian peak. width is the half width at half maximum.
func NewLorentzian(center, amplitude, width float64) Lorentzian {
	return Lorentzian{center: center, amplitude: amplitude, width: width}
}

// Center returns the peak position.
func (l Lorentzian) Center() float64 { return l.center }

// Amplitude returns the peak area.
func (l Lorentzian) Amplitude() float64 { return l.amplitude }

// Width returns the half width at half maximum.
func (l Lorentzian) Width() float64 { return l.width }

// Evaluate returns y0 plus the Lorentzian value at x.
func (l Lorentzian) Evaluate(x, y0 float64) float64 {
	return y0 + l.shape(x)
}

// EvaluateBlock evaluates the Lorentzian over a block of positions.
func (l Lorentzian) EvaluateBlock(dst, x, y0 []float64) {
	checkBlock(dst, x, y0)
	for i, xi := range x {
		dst[i] = y0[i] + l.shape(xi)
	}
}

func (l Lorentzian) shape(x float64) float64 {
	z := (x - l.center) / l.width
	return l.amplitude / (math.Pi * l.width * (1 + z*z))
}

// PeakHeight returns the value at the center, amplitude/(pi*width).
func (l Lorentzian) PeakHeight() float64 {
	return l.amplitude / (math.Pi * l.width)
}
