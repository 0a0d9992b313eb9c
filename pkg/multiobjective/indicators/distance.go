package indicators

import (
	"fmt"
	"math"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"gonum.org/v1/gonum/floats"
)

// DistanceFunc measures the distance between two points of equal dimension.
type DistanceFunc func(a, b framework.ObjectiveSpacePoint) float64

// Euclidean returns the Euclidean distance between a and b.
func Euclidean(a, b framework.ObjectiveSpacePoint) float64 {
	return floats.Distance(a, b, 2)
}

// DominanceDistance only accounts for the objectives in which a is worse
// than b: sqrt(sum(max(a_i - b_i, 0)^2)).
func DominanceDistance(a, b framework.ObjectiveSpacePoint) float64 {
	sum := 0.0
	for i := range a {
		if d := a[i] - b[i]; d > 0 {
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}

// NearestDistance returns the smallest distance from p to any point of the
// front, measured as dist(q, p). It is +Inf for an empty front.
func NearestDistance(p framework.ObjectiveSpacePoint, front []framework.ObjectiveSpacePoint, dist DistanceFunc) float64 {
	best := math.Inf(1)
	for _, q := range front {
		if d := dist(q, p); d < best {
			best = d
		}
	}
	return best
}

// nearestPositiveDistance returns the Euclidean distance from front[i] to its
// nearest neighbour, ignoring points at distance zero. It is 0 when every
// other point coincides with front[i].
func nearestPositiveDistance(i int, front []framework.ObjectiveSpacePoint) float64 {
	best := math.Inf(1)
	for j, q := range front {
		if j == i {
			continue
		}
		if d := Euclidean(front[i], q); d > 0 && d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// frontDimension validates that a front is non-empty and rectangular.
func frontDimension(points []framework.ObjectiveSpacePoint, role string) (int, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("%w: %s front", framework.ErrEmptyFront, role)
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: %s point %d has %d objectives, want %d",
				framework.ErrDimensionMismatch, role, i, len(p), dim)
		}
	}
	return dim, nil
}

// checkFronts validates a (reference, approximation) pair and returns the
// shared number of objectives.
func checkFronts(ref, front []framework.ObjectiveSpacePoint) (int, error) {
	refDim, err := frontDimension(ref, "reference")
	if err != nil {
		return 0, err
	}
	dim, err := frontDimension(front, "approximation")
	if err != nil {
		return 0, err
	}
	if dim != refDim {
		return 0, fmt.Errorf("%w: reference front has %d objectives, approximation front has %d",
			framework.ErrDimensionMismatch, refDim, dim)
	}
	return dim, nil
}
