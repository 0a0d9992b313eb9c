package indicators

import (
	"fmt"
	"math"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// R2 averages, over the weight vectors, the best weighted Tchebycheff value
// reached by any approximation point:
//
//	R2 = mean_w min_a max_i w_i * |z_i - a_i|
//
// where z is the utopian point, the per-objective minimum of the reference
// front. Lower is better. nil weights select DefaultWeights.
func R2(ref, front []framework.ObjectiveSpacePoint, weights [][]float64) (float64, error) {
	dim, err := checkFronts(ref, front)
	if err != nil {
		return 0, err
	}
	if weights == nil {
		weights = DefaultWeights(dim)
	}
	if len(weights) == 0 {
		return 0, fmt.Errorf("r2 needs at least one weight vector")
	}
	for i, w := range weights {
		if len(w) != dim {
			return 0, fmt.Errorf("%w: weight vector %d has %d components, fronts have %d objectives",
				framework.ErrDimensionMismatch, i, len(w), dim)
		}
	}

	b, err := ComputeBounds(ref)
	if err != nil {
		return 0, err
	}
	utopia := b.Min

	values := make([]float64, len(weights))
	for i, w := range weights {
		best := math.Inf(1)
		for _, a := range front {
			best = math.Min(best, tchebycheff(a, w, utopia))
		}
		values[i] = best
	}
	return stat.Mean(values, nil), nil
}

func tchebycheff(a framework.ObjectiveSpacePoint, w, utopia []float64) float64 {
	worst := math.Inf(-1)
	for k := range a {
		worst = math.Max(worst, w[k]*math.Abs(utopia[k]-a[k]))
	}
	return worst
}

// DefaultDivisions returns the simplex-lattice resolution used for R2 when
// no weights are configured.
func DefaultDivisions(dim int) int {
	switch {
	case dim <= 2:
		return 99
	case dim == 3:
		return 12
	default:
		return 6
	}
}

// DefaultWeights returns the uniform weight vectors used by R2 by default.
func DefaultWeights(dim int) [][]float64 {
	return SimplexLatticeWeights(dim, DefaultDivisions(dim))
}

// SimplexLatticeWeights returns every weight vector of dimension dim whose
// components are multiples of 1/divisions and sum to one. There are
// C(divisions+dim-1, dim-1) of them, ordered lexicographically.
func SimplexLatticeWeights(dim, divisions int) [][]float64 {
	if dim <= 0 || divisions <= 0 {
		return nil
	}

	var out [][]float64
	counts := make([]float64, dim)
	var fill func(k, left int)
	fill = func(k, left int) {
		if k == dim-1 {
			counts[k] = float64(left)
			w := make([]float64, dim)
			copy(w, counts)
			floats.Scale(1/float64(divisions), w)
			out = append(out, w)
			return
		}
		for v := 0; v <= left; v++ {
			counts[k] = float64(v)
			fill(k+1, left-v)
		}
	}
	fill(0, divisions)
	return out
}
