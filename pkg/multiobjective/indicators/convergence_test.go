package indicators

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomFront(rng *rand.Rand, n, dim int) []framework.ObjectiveSpacePoint {
	out := make([]framework.ObjectiveSpacePoint, n)
	for i := range out {
		p := make(framework.ObjectiveSpacePoint, dim)
		for k := range p {
			p[k] = rng.Float64()
		}
		out[i] = p
	}
	return out
}

func TestConvergenceIdenticalFronts(t *testing.T) {
	ref := []framework.ObjectiveSpacePoint{{0, 1}, {1, 0}}
	front := []framework.ObjectiveSpacePoint{{0, 1}, {1, 0}}

	gd, err := GenerationalDistance(ref, front)
	require.NoError(t, err)
	assert.Equal(t, 0.0, gd)

	igd, err := InvertedGenerationalDistance(ref, front)
	require.NoError(t, err)
	assert.Equal(t, 0.0, igd)

	igdp, err := InvertedGenerationalDistancePlus(ref, front)
	require.NoError(t, err)
	assert.Equal(t, 0.0, igdp)
}

func TestConvergenceSinglePointOffset(t *testing.T) {
	ref := []framework.ObjectiveSpacePoint{{0, 0}}
	front := []framework.ObjectiveSpacePoint{{1, 1}}

	gd, err := GenerationalDistance(ref, front)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, gd, 1e-12)

	igd, err := InvertedGenerationalDistance(ref, front)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, igd, 1e-12)

	igdp, err := InvertedGenerationalDistancePlus(ref, front)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, igdp, 1e-12)
}

func TestIGDPlusIgnoresImprovements(t *testing.T) {
	ref := []framework.ObjectiveSpacePoint{{1, 1}}
	front := []framework.ObjectiveSpacePoint{{0, 0}}

	igd, err := InvertedGenerationalDistance(ref, front)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, igd, 1e-12)

	igdp, err := InvertedGenerationalDistancePlus(ref, front)
	require.NoError(t, err)
	assert.Equal(t, 0.0, igdp)
}

func TestGenerationalDistanceMean(t *testing.T) {
	ref := []framework.ObjectiveSpacePoint{{0, 0}}
	front := []framework.ObjectiveSpacePoint{{3, 4}, {0, 1}}

	gd, err := GenerationalDistance(ref, front)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, gd, 1e-12)

	// (5^2 + 1^2)^(1/2) / 2
	gd2, err := GenerationalDistancePow(ref, front, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(26)/2, gd2, 1e-12)

	_, err = GenerationalDistancePow(ref, front, 0)
	assert.Error(t, err)
}

func TestConvergenceNonNegative(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 20; i++ {
		ref := randomFront(rng, 1+rng.IntN(10), 3)
		front := randomFront(rng, 1+rng.IntN(10), 3)

		for name, fn := range map[string]func(a, b []framework.ObjectiveSpacePoint) (float64, error){
			"GD":   GenerationalDistance,
			"IGD":  InvertedGenerationalDistance,
			"IGD+": InvertedGenerationalDistancePlus,
		} {
			v, err := fn(ref, front)
			require.NoError(t, err, name)
			assert.GreaterOrEqual(t, v, 0.0, name)

			self, err := fn(front, front)
			require.NoError(t, err, name)
			assert.Equal(t, 0.0, self, name)
		}
	}
}

func TestConvergenceInvalidInput(t *testing.T) {
	ref := []framework.ObjectiveSpacePoint{{0, 0}}

	_, err := GenerationalDistance(ref, nil)
	assert.ErrorIs(t, err, framework.ErrEmptyFront)

	_, err = InvertedGenerationalDistance(nil, ref)
	assert.ErrorIs(t, err, framework.ErrEmptyFront)

	_, err = InvertedGenerationalDistancePlus(ref, []framework.ObjectiveSpacePoint{{0, 0, 0}})
	assert.ErrorIs(t, err, framework.ErrDimensionMismatch)
}
