package distribution

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Univariate is the slice of the gonum distuv API the explorer relies on.
type Univariate interface {
	Rand() float64
	Mean() float64
	Variance() float64
	Prob(x float64) float64
}

// Model returns the gonum distribution matching kind and params. Draws come
// from src; a nil src uses the global source.
func Model(kind Kind, params Params, src rand.Source) (Univariate, error) {
	e, err := lookup(kind)
	if err != nil {
		return nil, err
	}
	if err := e.validate(params); err != nil {
		return nil, err
	}

	switch kind {
	case Normal:
		return distuv.Normal{Mu: params.Mean, Sigma: params.StdDev, Src: src}, nil
	case Poisson:
		return distuv.Poisson{Lambda: params.Lambda, Src: src}, nil
	case Binomial:
		return distuv.Binomial{N: float64(params.N), P: params.P, Src: src}, nil
	case Exponential:
		return distuv.Exponential{Rate: params.Lambda, Src: src}, nil
	case ChiSquared:
		return distuv.ChiSquared{K: float64(params.DF), Src: src}, nil
	}
	return nil, invalid("unsupported distribution %v", kind)
}

// Moments summarises a distribution's location and spread.
type Moments struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// Describe returns the theoretical moments of kind under params.
func Describe(kind Kind, params Params) (Moments, error) {
	m, err := Model(kind, params, nil)
	if err != nil {
		return Moments{}, err
	}
	v := m.Variance()
	return Moments{Mean: m.Mean(), Variance: v, StdDev: math.Sqrt(v)}, nil
}
