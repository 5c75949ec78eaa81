package peak

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when positions and offsets differ in length.
var ErrLengthMismatch = errors.New("peak: positions and offsets must have same length")

// Function is an analytic peak shape evaluated at a channel position.
type Function interface {
	// Evaluate returns y0 plus the contribution at position x.
	Evaluate(x, y0 float64) float64

	// EvaluateBlock sets dst[i] = Evaluate(x[i], y0[i]) for every index.
	// dst may alias y0. Panics if the slice lengths differ.
	EvaluateBlock(dst, x, y0 []float64)

	// Center returns the position the shape is centered on.
	Center() float64
}

func checkBlock(dst, x, y0 []float64) {
	if len(dst) != len(x) || len(y0) != len(x) {
		panic(fmt.Sprintf("peak: block length mismatch: dst=%d x=%d y0=%d", len(dst), len(x), len(y0)))
	}
}
