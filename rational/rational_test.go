package rational_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/gauss/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApproximate_KnownValues checks the bounded approximation against
// reference values of the classic convergent algorithm.
func TestApproximate_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      float64
		maxDen int64
		want   string
	}{
		{"pi default bound", math.Pi, rational.DefaultMaxDenominator, "3126535/995207"},
		{"pi 1000", math.Pi, 1000, "355/113"},
		{"pi 1", math.Pi, 1, "3"},
		{"tenth", 0.1, rational.DefaultMaxDenominator, "1/10"},
		{"negative", -1.4, rational.DefaultMaxDenominator, "-7/5"},
		{"third", 1.0 / 3.0, rational.DefaultMaxDenominator, "1/3"},
		{"rounded eight thirds", 2.666666666666667, rational.DefaultMaxDenominator, "8/3"},
		{"scenario value", 0.38378378378378386, rational.DefaultMaxDenominator, "71/185"},
		{"tiny collapses to zero", 1e-7, rational.DefaultMaxDenominator, "0"},
		{"tie prefers convergent 0.5", 0.5, 1, "0"},
		{"tie prefers convergent 1.5", 1.5, 1, "1"},
		{"integer", 42, rational.DefaultMaxDenominator, "42"},
		{"negative zero", math.Copysign(0, -1), rational.DefaultMaxDenominator, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rational.Approximate(tc.x, tc.maxDen)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rational.String(got))
			assert.LessOrEqual(t, got.Denom().Int64(), tc.maxDen)
		})
	}
}

func TestApproximate_Errors(t *testing.T) {
	t.Parallel()

	_, err := rational.Approximate(math.NaN(), 10)
	assert.ErrorIs(t, err, rational.ErrNonFinite)

	_, err = rational.Approximate(math.Inf(-1), 10)
	assert.ErrorIs(t, err, rational.ErrNonFinite)

	_, err = rational.Approximate(0.5, 0)
	assert.ErrorIs(t, err, rational.ErrMaxDenominator)
}

// TestLimitDenominator_DoesNotMutate ensures the input rational is left intact.
func TestLimitDenominator_DoesNotMutate(t *testing.T) {
	t.Parallel()

	in := big.NewRat(314159, 100000)
	got, err := rational.LimitDenominator(in, 10)
	require.NoError(t, err)
	assert.Equal(t, "22/7", rational.String(got))
	assert.Equal(t, "314159/100000", rational.String(in))

	// already within bound: an equal but distinct value comes back
	small := big.NewRat(3, 4)
	same, err := rational.LimitDenominator(small, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, same.Cmp(small))
	assert.NotSame(t, small, same)
}

// TestLimitDenominator_IsClosest brute-forces all denominators up to the bound.
func TestLimitDenominator_IsClosest(t *testing.T) {
	t.Parallel()

	const maxDen = 60
	for _, x := range []float64{0.7071067811865476, -2.718281828459045, 1.618033988749895, 0.0123} {
		r, err := rational.FromFloat(x)
		require.NoError(t, err)
		got, err := rational.LimitDenominator(r, maxDen)
		require.NoError(t, err)

		best := new(big.Rat).Sub(got, r)
		best.Abs(best)
		for q := int64(1); q <= maxDen; q++ {
			// nearest numerator for this denominator
			p := math.Round(x * float64(q))
			cand := big.NewRat(int64(p), q)
			diff := new(big.Rat).Sub(cand, r)
			diff.Abs(diff)
			assert.True(t, best.Cmp(diff) <= 0, "x=%v: %s beaten by %s", x, got.RatString(), cand.RatString())
		}
	}
}

func TestString_Nil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<nil>", rational.String(nil))
}
