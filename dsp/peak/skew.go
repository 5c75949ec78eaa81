package peak

import (
	"github.com/cwbudde/algo-specgen/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Direction selects which flank of a skewed peak is preserved.
type Direction int

const (
	// Right multiplies by the rising logistic, attenuating the left flank.
	Right Direction = iota
	// Left multiplies by one minus the logistic, attenuating the right flank.
	Left
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Skew masks an inner peak with a logistic curve centered on the inner
// peak's center. The inner peak is always evaluated with a zero offset; only
// the masked contribution is added to the caller's offset.
type Skew struct {
	inner     Function
	steepness float64
	direction Direction
}

// NewSkew wraps inner with a logistic mask of steepness k.
// k = 0 gives a constant 0.5 mask for either direction.
func NewSkew(inner Function, k float64, direction Direction) Skew {
	return Skew{inner: inner, steepness: k, direction: direction}
}

// SkewLeft is NewSkew(inner, k, Left).
func SkewLeft(inner Function, k float64) Skew {
	return NewSkew(inner, k, Left)
}

// SkewRight is NewSkew(inner, k, Right).
func SkewRight(inner Function, k float64) Skew {
	return NewSkew(inner, k, Right)
}

// Inner returns the wrapped peak.
func (s Skew) Inner() Function { return s.inner }

// Steepness returns the logistic steepness k.
func (s Skew) Steepness() float64 { return s.steepness }

// Direction returns the preserved flank.
func (s Skew) Direction() Direction { return s.direction }

// Center delegates to the inner peak.
func (s Skew) Center() float64 { return s.inner.Center() }

// Evaluate returns y0 plus the masked inner contribution at x.
func (s Skew) Evaluate(x, y0 float64) float64 {
	y := s.inner.Evaluate(x, 0)
	return y0 + y*s.mask(x, s.inner.Center())
}

// EvaluateBlock evaluates the skewed peak over a block of positions.
func (s Skew) EvaluateBlock(dst, x, y0 []float64) {
	checkBlock(dst, x, y0)
	if len(x) == 0 {
		return
	}

	contrib, mask, buf := getScratch(len(x))
	defer putScratch(buf)

	core.Zero(contrib)
	s.inner.EvaluateBlock(contrib, x, contrib)

	center := s.inner.Center()
	for i, xi := range x {
		mask[i] = s.mask(xi, center)
	}

	vecmath.MulBlockInPlace(contrib, mask)
	vecmath.AddBlock(dst, y0, contrib)
}

func (s Skew) mask(x, center float64) float64 {
	m := core.Sigmoid(x, center, s.steepness)
	if s.direction == Left {
		m = 1 - m
	}
	return m
}
