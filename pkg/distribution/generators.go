package distribution

import (
	"math"

	"github.com/NileshArnaiya/statistics-interactive-course/pkg/mathutil"
)

const (
	// normalHalfWidth is how many standard deviations the normal walk covers
	// on each side of the mean, in normalStepsPerSigma steps per sigma.
	normalHalfWidth     = 4
	normalStepsPerSigma = 5

	// continuous real walks step by 1/stepsPerUnit and take at most
	// maxGridSteps steps.
	stepsPerUnit = 10
	maxGridSteps = 1_000_000
)

var sqrt2Pi = math.Sqrt(2 * math.Pi)

// The generators below assume their arguments already passed validation.

func normalPoints(p Params, scale, _ float64) Sequence {
	const half = normalHalfWidth * normalStepsPerSigma
	norm := scale / (p.StdDev * sqrt2Pi)

	seq := make(Sequence, 0, 2*half+1)
	for i := -half; i <= half; i++ {
		z := float64(i) / normalStepsPerSigma
		seq = append(seq, Point{
			X: p.Mean + z*p.StdDev,
			Y: norm * math.Exp(-0.5*z*z),
		})
	}
	return seq
}

func poissonPoints(p Params, scale, bound float64) Sequence {
	maxK := int(bound)
	logLambda := math.Log(p.Lambda)

	seq := make(Sequence, 0, maxK+1)
	for k := 0; k <= maxK; k++ {
		fk, _ := mathutil.Factorial(k)
		// lambda^k e^-lambda / k!, evaluated in log space so large lambda
		// does not overflow the numerator.
		mass := math.Exp(float64(k)*logLambda - p.Lambda - math.Log(fk))
		seq = append(seq, Point{X: float64(k), Y: mass * scale})
	}
	return seq
}

func binomialPoints(p Params, scale, _ float64) Sequence {
	seq := make(Sequence, 0, p.N+1)
	for k := 0; k <= p.N; k++ {
		coef, _ := mathutil.Choose(p.N, k)
		mass := coef * math.Pow(p.P, float64(k)) * math.Pow(1-p.P, float64(p.N-k))
		seq = append(seq, Point{X: float64(k), Y: mass * scale})
	}
	return seq
}

func exponentialPoints(p Params, scale, bound float64) Sequence {
	steps := gridSteps(bound)

	seq := make(Sequence, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := float64(i) / stepsPerUnit
		seq = append(seq, Point{X: x, Y: p.Lambda * math.Exp(-p.Lambda*x) * scale})
	}
	return seq
}

func chiSquaredPoints(p Params, scale, bound float64) Sequence {
	half := float64(p.DF) / 2
	g, _ := mathutil.Gamma(half)
	norm := scale / (math.Pow(2, half) * g)
	steps := gridSteps(bound)

	seq := make(Sequence, 0, steps)
	for i := 1; i <= steps; i++ {
		x := float64(i) / stepsPerUnit
		seq = append(seq, Point{X: x, Y: norm * math.Pow(x, half-1) * math.Exp(-x/2)})
	}
	return seq
}

// gridSteps counts whole 1/stepsPerUnit steps in [0, bound]. The small
// slack keeps bounds such as 10 from losing their last point to rounding.
func gridSteps(bound float64) int {
	return int(math.Floor(bound*stepsPerUnit + 1e-9))
}
