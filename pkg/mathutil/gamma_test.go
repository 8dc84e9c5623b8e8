package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestGammaBaseCases(t *testing.T) {
	got, err := Gamma(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = Gamma(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.7724539, got, 1e-7)
}

func TestGammaMatchesStdlib(t *testing.T) {
	for _, x := range []float64{1.5, 2, 2.5, 3, 4.5, 7, 10, 20.5} {
		got, err := Gamma(x)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Gamma(x), got, tolerance, "gamma(%v)", x)
	}

	got, _ := Gamma(2)
	assert.Equal(t, 1.0, got)
	got, _ = Gamma(3)
	assert.Equal(t, 2.0, got)
}

func TestGammaRejectsUnreachableArguments(t *testing.T) {
	for _, x := range []float64{0, -1, -0.5, 0.3, 2.25, math.Pi, math.NaN(), math.Inf(1), MaxGammaArg + 1} {
		_, err := Gamma(x)
		assert.ErrorIs(t, err, ErrInvalidArgument, "gamma(%v)", x)
	}
}
