package synth

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes what was written for one spectrum. Statistics cover the
// rows that were written successfully.
type Summary struct {
	Frames     int
	Rows       int
	FailedRows int
	Outliers   int

	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

type accumulator struct {
	frames     int
	failedRows int
	outliers   int
	values     []float64
}

func newAccumulator(capacity int) *accumulator {
	return &accumulator{values: make([]float64, 0, capacity)}
}

func (a *accumulator) add(v float64) {
	a.values = append(a.values, v)
}

func (a *accumulator) summary() Summary {
	s := Summary{
		Frames:     a.frames,
		Rows:       len(a.values),
		FailedRows: a.failedRows,
		Outliers:   a.outliers,
		Min:        math.NaN(),
		Max:        math.NaN(),
		Mean:       math.NaN(),
		StdDev:     math.NaN(),
	}
	if len(a.values) == 0 {
		return s
	}
	s.Min = floats.Min(a.values)
	s.Max = floats.Max(a.values)
	s.Mean, s.StdDev = stat.MeanStdDev(a.values, nil)
	return s
}
