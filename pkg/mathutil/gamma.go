package mathutil

import (
	"fmt"
	"math"
)

// MaxGammaArg bounds Gamma so the result stays finite.
const MaxGammaArg = 171

// Gamma evaluates the gamma function for positive integers and positive
// half-integers only. It walks up from Gamma(1) = 1 or Gamma(0.5) = sqrt(pi)
// using Gamma(x) = (x-1) * Gamma(x-1).
func Gamma(x float64) (float64, error) {
	if math.IsNaN(x) || x <= 0 || x > MaxGammaArg {
		return 0, fmt.Errorf("%w: gamma(%v) needs 0 < x <= %d", ErrInvalidArgument, x, MaxGammaArg)
	}

	var g, v float64
	switch {
	case x == math.Trunc(x):
		g, v = 1, 1
	case x-0.5 == math.Trunc(x-0.5):
		g, v = math.Sqrt(math.Pi), 0.5
	default:
		return 0, fmt.Errorf("%w: gamma(%v) is only defined here for integers and half-integers", ErrInvalidArgument, x)
	}

	for ; v < x; v++ {
		g *= v
	}
	return g, nil
}
