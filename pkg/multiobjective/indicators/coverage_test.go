package indicators

import (
	"math/rand/v2"
	"testing"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCoverage(t *testing.T) {
	a := []framework.ObjectiveSpacePoint{{0, 0}}
	b := []framework.ObjectiveSpacePoint{{1, 1}, {2, 2}}

	ab, err := SetCoverage(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ab)

	ba, err := SetCoverage(b, a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ba)

	both, err := SetCoverageBoth(a, b)
	require.NoError(t, err)
	assert.Equal(t, Coverage{ReferenceOverFront: 1, FrontOverReference: 0}, both)
}

func TestSetCoverageEmptySets(t *testing.T) {
	b := []framework.ObjectiveSpacePoint{{1, 1}}

	got, err := SetCoverage(nil, b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = SetCoverage(b, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = SetCoverage(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestSetCoverageIdenticalPointsDoNotCover(t *testing.T) {
	f := []framework.ObjectiveSpacePoint{{0, 1}, {1, 0}}
	got, err := SetCoverage(f, f)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestSetCoverageBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 9))
	for i := 0; i < 20; i++ {
		a := randomFront(rng, rng.IntN(8), 2)
		b := randomFront(rng, 1+rng.IntN(8), 2)
		got, err := SetCoverage(a, b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestSetCoverageDimensionMismatch(t *testing.T) {
	_, err := SetCoverage([]framework.ObjectiveSpacePoint{{0, 0}}, []framework.ObjectiveSpacePoint{{1, 1, 1}})
	assert.ErrorIs(t, err, framework.ErrDimensionMismatch)

	_, err = SetCoverage(nil, []framework.ObjectiveSpacePoint{{1, 1}, {1}})
	assert.ErrorIs(t, err, framework.ErrDimensionMismatch)
}
