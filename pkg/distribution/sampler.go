package distribution

import "fmt"

type entry struct {
	validate     func(p Params) error
	generate     func(p Params, scale, bound float64) Sequence
	bound        boundRule
	defaultBound float64
}

// kinds is the dispatch table. A new distribution needs a Kind constant, a
// name in kindNames and one entry here.
var kinds = map[Kind]entry{
	Normal: {
		validate: validateNormal,
		generate: normalPoints,
	},
	Poisson: {
		validate:     validateRate,
		generate:     poissonPoints,
		bound:        boundCount,
		defaultBound: 15,
	},
	Binomial: {
		validate: validateBinomial,
		generate: binomialPoints,
	},
	Exponential: {
		validate:     validateRate,
		generate:     exponentialPoints,
		bound:        boundReal,
		defaultBound: 10,
	},
	ChiSquared: {
		validate:     validateChiSquared,
		generate:     chiSquaredPoints,
		bound:        boundReal,
		defaultBound: 20,
	},
}

func lookup(kind Kind) (entry, error) {
	e, ok := kinds[kind]
	if !ok {
		return entry{}, invalid("unsupported distribution %v", kind)
	}
	return e, nil
}

// Sample returns the plot points of kind under params. Every y is the raw
// density or mass multiplied by scale. domainBound is the upper end of the
// walk for poisson (largest k), exponential and chi-squared (largest x); the
// other kinds ignore it.
func Sample(kind Kind, params Params, scale, domainBound float64) (Sequence, error) {
	e, err := lookup(kind)
	if err != nil {
		return nil, err
	}
	if err := e.validate(params); err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}
	if err := validateScale(scale); err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}
	if err := e.bound.validate(domainBound); err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}
	return e.generate(params, scale, domainBound), nil
}

// DefaultBound returns the domain bound the explorer uses for kind, or 0
// when the kind ignores it.
func DefaultBound(kind Kind) float64 {
	return kinds[kind].defaultBound
}

// UsesBound reports whether Sample reads domainBound for kind.
func UsesBound(kind Kind) bool {
	return kinds[kind].bound != boundIgnored
}

// NormalPoints walks mean±4·stdDev in stdDev/5 steps.
func NormalPoints(mean, stdDev, scale float64) (Sequence, error) {
	return Sample(Normal, Params{Mean: mean, StdDev: stdDev}, scale, 0)
}

// PoissonPoints evaluates the mass function at k = 0..maxK.
func PoissonPoints(lambda float64, maxK int, scale float64) (Sequence, error) {
	return Sample(Poisson, Params{Lambda: lambda}, scale, float64(maxK))
}

// BinomialPoints evaluates the mass function at k = 0..n.
func BinomialPoints(n int, p, scale float64) (Sequence, error) {
	return Sample(Binomial, Params{N: n, P: p}, scale, 0)
}

// ExponentialPoints walks x = 0..maxX in steps of 0.1.
func ExponentialPoints(lambda, maxX, scale float64) (Sequence, error) {
	return Sample(Exponential, Params{Lambda: lambda}, scale, maxX)
}

// ChiSquaredPoints walks x = 0.1..maxX in steps of 0.1.
func ChiSquaredPoints(df int, maxX, scale float64) (Sequence, error) {
	return Sample(ChiSquared, Params{DF: df}, scale, maxX)
}
