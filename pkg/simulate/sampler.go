package simulate

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/NileshArnaiya/statistics-interactive-course/pkg/distribution"
)

// Sampler draws random variates from one of the explorer's distributions.
type Sampler struct {
	kind distribution.Kind
	dist distribution.Univariate
}

// NewSampler creates a sampler whose draws are reproducible for a given seed.
func NewSampler(kind distribution.Kind, params distribution.Params, seed uint64) (*Sampler, error) {
	dist, err := distribution.Model(kind, params, rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	if err != nil {
		return nil, err
	}
	return &Sampler{kind: kind, dist: dist}, nil
}

// Kind returns the distribution being sampled.
func (s *Sampler) Kind() distribution.Kind { return s.kind }

// Rand draws one value.
func (s *Sampler) Rand() float64 {
	return s.dist.Rand()
}

// GenerateVector fills v with draws.
func (s *Sampler) GenerateVector(v []float64) {
	for i := range v {
		v[i] = s.dist.Rand()
	}
}

// RandN returns n draws.
func (s *Sampler) RandN(n int) []float64 {
	r := make([]float64, n)
	s.GenerateVector(r)
	return r
}

// Summary compares the moments of a batch of draws with the theoretical ones.
type Summary struct {
	N           int
	Mean        float64
	Variance    float64
	Theoretical distribution.Moments
}

// Summarize computes the sample mean and unbiased variance of data.
func (s *Sampler) Summarize(data []float64) Summary {
	sum := Summary{
		N: len(data),
		Theoretical: distribution.Moments{
			Mean:     s.dist.Mean(),
			Variance: s.dist.Variance(),
		},
	}
	sum.Theoretical.StdDev = math.Sqrt(sum.Theoretical.Variance)
	if len(data) > 1 {
		sum.Mean, sum.Variance = stat.MeanVariance(data, nil)
	} else if len(data) == 1 {
		sum.Mean = data[0]
	}
	return sum
}
