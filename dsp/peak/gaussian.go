package peak

import (
	"math"

	"github.com/cwbudde/algo-specgen/dsp/core"
)

// Gaussian is a normalized bell curve scaled by its amplitude, so that the
// area under the curve equals the amplitude.
type Gaussian struct {
	center    float64
	amplitude float64
	width     float64
}

// NewGaussian returns a Gaussian peak. width is the standard deviation.
func NewGaussian(center, amplitude, width float64) Gaussian {
	return Gaussian{center: center, amplitude: amplitude, width: width}
}

// Center returns the peak position.
func (g Gaussian) Center() float64 { return g.center }

// Amplitude returns the peak area.
func (g Gaussian) Amplitude() float64 { return g.amplitude }

// Width returns the standard deviation.
func (g Gaussian) Width() float64 { return g.width }

// Evaluate returns y0 plus the Gaussian value at x.
func (g Gaussian) Evaluate(x, y0 float64) float64 {
	return y0 + g.shape(x)
}

// EvaluateBlock evaluates the Gaussian over a block of positions.
func (g Gaussian) EvaluateBlock(dst, x, y0 []float64) {
	checkBlock(dst, x, y0)
	for i, xi := range x {
		dst[i] = y0[i] + g.shape(xi)
	}
}

func (g Gaussian) shape(x float64) float64 {
	z := (x - g.center) / g.width
	norm := 1 / math.Sqrt(2*math.Pi*g.width*g.width)
	return g.amplitude * norm * math.Exp(-0.5*z*z)
}

// PeakHeight returns the value at the center, amplitude/sqrt(2*pi*width^2).
func (g Gaussian) PeakHeight() float64 {
	return g.amplitude * core.InvSqrt2Pi / math.Abs(g.width)
}
