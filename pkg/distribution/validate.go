package distribution

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/NileshArnaiya/statistics-interactive-course/pkg/mathutil"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

func validateNormal(p Params) error {
	var result *multierror.Error
	if !finite(p.Mean) {
		result = multierror.Append(result, invalid("mean must be finite, got %v", p.Mean))
	}
	if !finite(p.StdDev) || p.StdDev <= 0 {
		result = multierror.Append(result, invalid("std_dev must be positive, got %v", p.StdDev))
	}
	return result.ErrorOrNil()
}

func validateRate(p Params) error {
	if !finite(p.Lambda) || p.Lambda <= 0 {
		return invalid("lambda must be positive, got %v", p.Lambda)
	}
	return nil
}

func validateBinomial(p Params) error {
	var result *multierror.Error
	if p.N < 0 || p.N > mathutil.MaxFactorial {
		result = multierror.Append(result, invalid("n must be in [0, %d], got %d", mathutil.MaxFactorial, p.N))
	}
	if math.IsNaN(p.P) || p.P < 0 || p.P > 1 {
		result = multierror.Append(result, invalid("p must be in [0, 1], got %v", p.P))
	}
	return result.ErrorOrNil()
}

func validateChiSquared(p Params) error {
	if p.DF <= 0 {
		return invalid("df must be a positive integer, got %d", p.DF)
	}
	if _, err := mathutil.Gamma(float64(p.DF) / 2); err != nil {
		return fmt.Errorf("df %d: %w", p.DF, err)
	}
	return nil
}

func validateScale(scale float64) error {
	if !finite(scale) || scale < 0 {
		return invalid("scale must be a non-negative finite number, got %v", scale)
	}
	return nil
}

// boundRule says how a kind interprets the domain bound passed to Sample.
type boundRule int

const (
	boundIgnored boundRule = iota
	boundCount
	boundReal
)

func (r boundRule) validate(bound float64) error {
	switch r {
	case boundCount:
		if bound != math.Trunc(bound) || bound < 0 || bound > mathutil.MaxFactorial {
			return invalid("bound must be an integer in [0, %d], got %v", mathutil.MaxFactorial, bound)
		}
	case boundReal:
		if !finite(bound) || bound < 0 {
			return invalid("bound must be a non-negative finite number, got %v", bound)
		}
		if bound*stepsPerUnit > maxGridSteps {
			return invalid("bound %v exceeds the %d step walk limit", bound, maxGridSteps)
		}
	}
	return nil
}
