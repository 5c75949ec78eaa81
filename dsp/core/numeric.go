package core

import "math"

const defaultEpsilon = 1e-12

// InvSqrt2Pi is 1/sqrt(2*pi), the normalization of a unit-width Gaussian.
const InvSqrt2Pi = 0.3989422804014327

// NearlyEqual reports whether a and b are equal within eps.
// eps is used as an absolute bound first and as a relative bound otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Sigmoid returns the logistic function 1/(1+exp(-k*(x-x0))).
// k = 0 yields exactly 0.5 for every x.
func Sigmoid(x, x0, k float64) float64 {
	return 1 / (1 + math.Exp(-k*(x-x0)))
}
