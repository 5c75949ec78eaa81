package peak

import (
	"fmt"

	"github.com/cwbudde/algo-specgen/dsp/core"
)

// Pipeline is an ordered collection of peak functions folded over a channel
// axis. The zero value is an empty pipeline that returns offsets unchanged.
type Pipeline []Function

// Len returns the number of peak functions.
func (p Pipeline) Len() int { return len(p) }

// Evaluate folds the pipeline at a single position: each member receives the
// previous member's output as its offset.
func (p Pipeline) Evaluate(x, y0 float64) float64 {
	y := y0
	for _, f := range p {
		y = f.Evaluate(x, y)
	}
	return y
}

// EvaluateBlock folds the pipeline over a block of positions. dst starts as a
// copy of y0; each member is then applied to the whole block in order.
// dst may alias y0. Panics if the slice lengths differ.
func (p Pipeline) EvaluateBlock(dst, x, y0 []float64) {
	checkBlock(dst, x, y0)
	core.CopyInto(dst, y0)
	for _, f := range p {
		f.EvaluateBlock(dst, x, dst)
	}
}

// Render returns a new slice holding the pipeline evaluated over x with the
// per-channel offsets y0.
func (p Pipeline) Render(x, y0 []float64) ([]float64, error) {
	if len(x) != len(y0) {
		return nil, fmt.Errorf("%w: %d positions, %d offsets", ErrLengthMismatch, len(x), len(y0))
	}
	out := make([]float64, len(x))
	p.EvaluateBlock(out, x, y0)
	return out, nil
}

// Superpose returns y0 plus the sum of every member evaluated in isolation
// at x. It equals Evaluate up to floating-point rounding.
func (p Pipeline) Superpose(x, y0 float64) float64 {
	sum := 0.0
	for _, f := range p {
		sum += f.Evaluate(x, 0)
	}
	return sum + y0
}
