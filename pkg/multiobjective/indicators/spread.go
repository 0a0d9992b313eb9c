package indicators

import (
	"fmt"
	"math"
	"sort"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// Spread computes Deb's diversity metric Delta for bi-objective fronts.
// Both fronts are sorted lexicographically; the distances between their
// first and between their last points measure how well the extremes are
// reached, and the deviation of consecutive gaps from their mean measures
// uniformity. Lower is better.
func Spread(ref, front []framework.ObjectiveSpacePoint) (float64, error) {
	dim, err := checkFronts(ref, front)
	if err != nil {
		return 0, err
	}
	if dim != 2 {
		return 0, fmt.Errorf("%w: spread is defined for 2 objectives, got %d",
			framework.ErrUnsupportedDimensionality, dim)
	}

	f := sortedLexicographic(front)
	r := sortedLexicographic(ref)

	df := Euclidean(f[0], r[0])
	dl := Euclidean(f[len(f)-1], r[len(r)-1])

	n := len(f)
	if n == 1 {
		return 1, nil
	}

	gaps := make([]float64, n-1)
	mean := 0.0
	for i := 0; i < n-1; i++ {
		gaps[i] = Euclidean(f[i], f[i+1])
		mean += gaps[i]
	}
	mean /= float64(n - 1)

	diversity := df + dl
	for _, g := range gaps {
		diversity += math.Abs(g - mean)
	}

	denominator := df + dl + float64(n-1)*mean
	if denominator == 0 {
		return 0, nil
	}
	return diversity / denominator, nil
}

// GeneralizedSpread extends Spread to any number of objectives. The extreme
// point of each objective is the reference point with the largest value in
// it; gaps are measured to the nearest distinct neighbour.
func GeneralizedSpread(ref, front []framework.ObjectiveSpacePoint) (float64, error) {
	dim, err := checkFronts(ref, front)
	if err != nil {
		return 0, err
	}

	extremes := make([]framework.ObjectiveSpacePoint, dim)
	for k := 0; k < dim; k++ {
		best := ref[0]
		for _, p := range ref[1:] {
			if p[k] > best[k] {
				best = p
			}
		}
		extremes[k] = best
	}

	f := sortedLexicographic(front)
	n := len(f)
	if Euclidean(f[0], f[n-1]) == 0 {
		return 1, nil
	}

	nearest := make([]float64, n)
	mean := 0.0
	for i := range f {
		nearest[i] = nearestPositiveDistance(i, f)
		mean += nearest[i]
	}
	mean /= float64(n)

	extremeSum := 0.0
	for _, e := range extremes {
		extremeSum += NearestDistance(e, f, Euclidean)
	}

	deviation := 0.0
	for _, d := range nearest {
		deviation += math.Abs(d - mean)
	}

	denominator := extremeSum + float64(n)*mean
	if denominator == 0 {
		return 0, nil
	}
	return (extremeSum + deviation) / denominator, nil
}

// sortedLexicographic returns a lexicographically ordered copy of the points.
func sortedLexicographic(points []framework.ObjectiveSpacePoint) []framework.ObjectiveSpacePoint {
	out := make([]framework.ObjectiveSpacePoint, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return out
}
