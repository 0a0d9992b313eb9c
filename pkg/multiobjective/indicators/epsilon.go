package indicators

import (
	"math"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// AdditiveEpsilon returns the smallest non-negative eps such that every
// reference point r is eps-dominated by some approximation point a,
// i.e. a_i - eps <= r_i for every objective i.
func AdditiveEpsilon(ref, front []framework.ObjectiveSpacePoint) (float64, error) {
	if _, err := checkFronts(ref, front); err != nil {
		return 0, err
	}

	eps := math.Inf(-1)
	for _, r := range ref {
		best := math.Inf(1)
		for _, a := range front {
			worst := math.Inf(-1)
			for i := range r {
				worst = math.Max(worst, a[i]-r[i])
			}
			best = math.Min(best, worst)
		}
		eps = math.Max(eps, best)
	}
	return math.Max(eps, 0), nil
}
