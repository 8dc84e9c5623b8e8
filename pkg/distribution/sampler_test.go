package distribution

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

const tolerance = 1e-9

func TestNormalSymmetricAroundMean(t *testing.T) {
	for _, tc := range []struct{ mean, sd float64 }{{50, 10}, {0, 1}, {-3.5, 0.25}, {12, 7}} {
		seq, err := NormalPoints(tc.mean, tc.sd, 100)
		require.NoError(t, err)
		require.Len(t, seq, 41)

		for i := range seq {
			j := len(seq) - 1 - i
			assert.InDelta(t, seq[i].Y, seq[j].Y, tolerance)
			assert.InDelta(t, tc.mean-seq[i].X, seq[j].X-tc.mean, 1e-9*math.Max(1, math.Abs(tc.mean)))
		}

		peak, ok := seq.Peak()
		require.True(t, ok)
		assert.Equal(t, tc.mean, peak.X)
		assert.InDelta(t, 100/(tc.sd*math.Sqrt(2*math.Pi)), peak.Y, tolerance)

		assert.InDelta(t, tc.mean-4*tc.sd, seq[0].X, 1e-9)
		assert.InDelta(t, tc.mean+4*tc.sd, seq[len(seq)-1].X, 1e-9)
	}
}

func TestPoissonPartialSumsApproachOne(t *testing.T) {
	for _, lambda := range []float64{0.1, 2, 5.5, 10} {
		prev := 0.0
		for _, maxK := range []int{0, 5, 15, 40, 100} {
			seq, err := PoissonPoints(lambda, maxK, 1)
			require.NoError(t, err)
			require.Len(t, seq, maxK+1)

			total := seq.Total()
			assert.LessOrEqual(t, total, 1+tolerance)
			assert.GreaterOrEqual(t, total, prev-tolerance)
			prev = total
		}
		assert.InDelta(t, 1, prev, 1e-9, "lambda %v", lambda)
	}
}

func TestDiscreteSupportIsConsecutive(t *testing.T) {
	seq, err := PoissonPoints(3, 15, 100)
	require.NoError(t, err)
	for i, p := range seq {
		assert.Equal(t, float64(i), p.X)
	}

	seq, err = BinomialPoints(7, 0.2, 100)
	require.NoError(t, err)
	require.Len(t, seq, 8)
	for i, p := range seq {
		assert.Equal(t, float64(i), p.X)
	}
}

func TestBinomialSumsToOne(t *testing.T) {
	for _, tc := range []struct {
		n int
		p float64
	}{{0, 0.5}, {1, 0.5}, {10, 0.3}, {20, 0.99}, {20, 0}, {20, 1}, {60, 0.42}} {
		seq, err := BinomialPoints(tc.n, tc.p, 1)
		require.NoError(t, err)
		assert.InDelta(t, 1, seq.Total(), 1e-9, "n=%d p=%v", tc.n, tc.p)
	}
}

func TestBinomialScenario(t *testing.T) {
	seq, err := Sample(Binomial, Params{N: 10, P: 0.3}, 100, 0)
	require.NoError(t, err)

	assert.InDelta(t, 26.68, seq[3].Y, 0.005)
	peak, ok := seq.Peak()
	require.True(t, ok)
	assert.Equal(t, 3.0, peak.X)
}

func TestExponentialScenario(t *testing.T) {
	seq, err := Sample(Exponential, Params{Lambda: 1}, 100, 10)
	require.NoError(t, err)
	require.Len(t, seq, 101)

	assert.Equal(t, 0.0, seq[0].X)
	assert.Equal(t, 100.0, seq[0].Y)
	assert.Equal(t, 10.0, seq[len(seq)-1].X)
	for i := 1; i < len(seq); i++ {
		assert.Less(t, seq[i].Y, seq[i-1].Y)
	}
}

func TestChiSquaredWalk(t *testing.T) {
	seq, err := ChiSquaredPoints(3, 20, 100)
	require.NoError(t, err)
	require.Len(t, seq, 200)
	assert.Equal(t, 0.1, seq[0].X)
	assert.Equal(t, 20.0, seq[len(seq)-1].X)

	// df = 2 reduces to an exponential with rate 1/2.
	seq, err = ChiSquaredPoints(2, 5, 1)
	require.NoError(t, err)
	for _, p := range seq {
		assert.InDelta(t, 0.5*math.Exp(-p.X/2), p.Y, tolerance)
	}
}

func TestSampleMatchesDistuv(t *testing.T) {
	p := DefaultParams()

	check := func(kind Kind, seq Sequence, dist Univariate) {
		for _, pt := range seq {
			assert.InDelta(t, dist.Prob(pt.X), pt.Y, 1e-9, "%v at x=%v", kind, pt.X)
		}
	}

	for _, kind := range Kinds() {
		seq, err := Sample(kind, p, 1, DefaultBound(kind))
		require.NoError(t, err, kind.String())
		require.NotEmpty(t, seq)

		var dist Univariate
		switch kind {
		case Normal:
			dist = distuv.Normal{Mu: p.Mean, Sigma: p.StdDev}
		case Poisson:
			dist = distuv.Poisson{Lambda: p.Lambda}
		case Binomial:
			dist = distuv.Binomial{N: float64(p.N), P: p.P}
		case Exponential:
			dist = distuv.Exponential{Rate: p.Lambda}
		case ChiSquared:
			dist = distuv.ChiSquared{K: float64(p.DF)}
		}
		check(kind, seq, dist)
	}
}

func TestScaleIsLinear(t *testing.T) {
	p := DefaultParams()
	for _, kind := range Kinds() {
		unit, err := Sample(kind, p, 1, DefaultBound(kind))
		require.NoError(t, err)
		scaled, err := Sample(kind, p, 250, DefaultBound(kind))
		require.NoError(t, err)
		require.Equal(t, unit.Xs(), scaled.Xs())
		for i := range unit {
			assert.InDelta(t, unit[i].Y*250, scaled[i].Y, 1e-9)
			assert.GreaterOrEqual(t, scaled[i].Y, 0.0)
		}
	}
}

func TestSampleRejectsInvalidArguments(t *testing.T) {
	cases := []struct {
		name   string
		kind   Kind
		params Params
		scale  float64
		bound  float64
	}{
		{"zero std dev", Normal, Params{Mean: 50, StdDev: 0}, 100, 0},
		{"negative std dev", Normal, Params{Mean: 50, StdDev: -1}, 100, 0},
		{"nan mean", Normal, Params{Mean: math.NaN(), StdDev: 1}, 100, 0},
		{"zero lambda", Poisson, Params{Lambda: 0}, 100, 15},
		{"fractional max k", Poisson, Params{Lambda: 2}, 100, 2.5},
		{"negative max k", Poisson, Params{Lambda: 2}, 100, -1},
		{"max k overflows factorial", Poisson, Params{Lambda: 2}, 100, 171},
		{"negative n", Binomial, Params{N: -1, P: 0.5}, 100, 0},
		{"p above one", Binomial, Params{N: 10, P: 1.01}, 100, 0},
		{"p below zero", Binomial, Params{N: 10, P: -0.1}, 100, 0},
		{"negative rate", Exponential, Params{Lambda: -2}, 100, 10},
		{"infinite max x", Exponential, Params{Lambda: 1}, 100, math.Inf(1)},
		{"huge max x", Exponential, Params{Lambda: 1}, 100, 1e300},
		{"max x past int range", Exponential, Params{Lambda: 1}, 100, 1e19},
		{"max x past step limit", Exponential, Params{Lambda: 1}, 100, 1e12},
		{"chi-squared huge max x", ChiSquared, Params{DF: 3}, 100, 1e19},
		{"chi-squared max x past step limit", ChiSquared, Params{DF: 3}, 100, maxGridSteps/stepsPerUnit + 1},
		{"negative max x", ChiSquared, Params{DF: 3}, 100, -0.1},
		{"zero df", ChiSquared, Params{DF: 0}, 100, 20},
		{"huge df", ChiSquared, Params{DF: 1000}, 100, 20},
		{"negative scale", Normal, Params{Mean: 0, StdDev: 1}, -1, 0},
		{"nan scale", Binomial, Params{N: 3, P: 0.5}, math.NaN(), 0},
		{"unknown kind", Kind(42), DefaultParams(), 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := Sample(tc.kind, tc.params, tc.scale, tc.bound)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, seq)
		})
	}
}

func TestBoundAtStepLimit(t *testing.T) {
	seq, err := ExponentialPoints(1, maxGridSteps/stepsPerUnit, 1)
	require.NoError(t, err)
	assert.Len(t, seq, maxGridSteps+1)

	seq, err = PoissonPoints(2, 170, 1)
	require.NoError(t, err)
	assert.Len(t, seq, 171)
}

func TestValidationReportsEveryField(t *testing.T) {
	_, err := BinomialPoints(-4, 2, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "n must be")
	assert.Contains(t, err.Error(), "p must be")
}

func TestBoundIgnoredWhereUnused(t *testing.T) {
	assert.False(t, UsesBound(Normal))
	assert.False(t, UsesBound(Binomial))
	assert.True(t, UsesBound(Poisson))

	a, err := Sample(Normal, DefaultParams(), 100, -5)
	require.NoError(t, err)
	b, err := Sample(Normal, DefaultParams(), 100, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleIsIdempotentAcrossGoroutines(t *testing.T) {
	p := DefaultParams()
	want, err := Sample(ChiSquared, p, 100, 20)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Sequence, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Sample(ChiSquared, p, 100, 20)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}

	// Results are fresh slices.
	results[0][0].Y = -1
	assert.NotEqual(t, results[0][0].Y, results[1][0].Y)
}
