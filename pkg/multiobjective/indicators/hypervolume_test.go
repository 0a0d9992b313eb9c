package indicators

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inclusionExclusion computes the hypervolume of a small front exactly by
// summing the volumes of all intersections with alternating signs.
func inclusionExclusion(front []framework.ObjectiveSpacePoint, ref []float64) float64 {
	var inside []framework.ObjectiveSpacePoint
	for _, p := range front {
		if strictlyBelow(p, ref) {
			inside = append(inside, p)
		}
	}

	total := 0.0
	for mask := 1; mask < 1<<len(inside); mask++ {
		corner := make([]float64, len(ref))
		for k := range corner {
			corner[k] = math.Inf(-1)
		}
		size := 0
		for i, p := range inside {
			if mask&(1<<i) == 0 {
				continue
			}
			size++
			for k := range p {
				corner[k] = math.Max(corner[k], p[k])
			}
		}
		vol := 1.0
		for k := range ref {
			vol *= ref[k] - corner[k]
		}
		if size%2 == 1 {
			total += vol
		} else {
			total -= vol
		}
	}
	return total
}

func TestHypervolumeKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		front []framework.ObjectiveSpacePoint
		ref   []float64
		want  float64
	}{
		{
			name:  "one objective",
			front: []framework.ObjectiveSpacePoint{{2}, {1}, {5}},
			ref:   []float64{4},
			want:  3,
		},
		{
			name:  "two objectives",
			front: []framework.ObjectiveSpacePoint{{1, 2}, {2, 1}},
			ref:   []float64{3, 3},
			want:  3,
		},
		{
			name:  "dominated point adds nothing",
			front: []framework.ObjectiveSpacePoint{{1, 2}, {2, 1}, {2, 2}},
			ref:   []float64{3, 3},
			want:  3,
		},
		{
			name:  "three objectives single point",
			front: []framework.ObjectiveSpacePoint{{0, 0, 0}},
			ref:   []float64{1, 1, 1},
			want:  1,
		},
		{
			name:  "three objectives overlapping boxes",
			front: []framework.ObjectiveSpacePoint{{0, 0, 1}, {1, 1, 0}},
			ref:   []float64{2, 2, 2},
			want:  5,
		},
		{
			name:  "points outside the reference box",
			front: []framework.ObjectiveSpacePoint{{3, 0}, {0, 3}, {1, 1}},
			ref:   []float64{2, 2},
			want:  1,
		},
		{
			name:  "nothing inside",
			front: []framework.ObjectiveSpacePoint{{2, 2, 2}},
			ref:   []float64{2, 2, 2},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hypervolume(context.Background(), tt.front, tt.ref)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestHypervolumeMatchesInclusionExclusion(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for _, dim := range []int{2, 3, 4, 5} {
		ref := make([]float64, dim)
		for k := range ref {
			ref[k] = 1.1
		}
		for trial := 0; trial < 10; trial++ {
			front := randomFront(rng, 7, dim)
			got, err := Hypervolume(context.Background(), front, ref)
			require.NoError(t, err)
			assert.InDelta(t, inclusionExclusion(front, ref), got, 1e-9, "dim %d trial %d", dim, trial)
		}
	}
}

func TestHypervolumeMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 17))
	ref := []float64{1, 1, 1}
	front := randomFront(rng, 10, 3)

	prev := 0.0
	for i := 1; i <= len(front); i++ {
		hv, err := Hypervolume(context.Background(), front[:i], ref)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, hv, prev-1e-12)
		prev = hv
	}
}

func TestHypervolumeDuplicatePoints(t *testing.T) {
	front := []framework.ObjectiveSpacePoint{{0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}}
	hv, err := Hypervolume(context.Background(), front, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.125, hv, 1e-12)
}

func TestHypervolumeDoesNotReorderInput(t *testing.T) {
	front := []framework.ObjectiveSpacePoint{{0.9, 0.1, 0.5}, {0.1, 0.9, 0.5}, {0.5, 0.5, 0.1}}
	before := []framework.ObjectiveSpacePoint{front[0].Clone(), front[1].Clone(), front[2].Clone()}

	_, err := Hypervolume(context.Background(), front, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, before, front)
}

func TestHypervolumeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	front := randomFront(rand.New(rand.NewPCG(1, 1)), 20, 4)
	_, err := Hypervolume(ctx, front, []float64{1, 1, 1, 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHypervolumeInvalidInput(t *testing.T) {
	_, err := Hypervolume(context.Background(), nil, []float64{1, 1})
	assert.ErrorIs(t, err, framework.ErrEmptyFront)

	_, err = Hypervolume(context.Background(), []framework.ObjectiveSpacePoint{{0, 0}}, []float64{1})
	assert.ErrorIs(t, err, framework.ErrDimensionMismatch)
}

func TestNadirPoint(t *testing.T) {
	p, err := NadirPoint([]framework.ObjectiveSpacePoint{{0, 3}, {2, 1}}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 3.5}, p)
}
