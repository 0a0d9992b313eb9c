package indicators

import (
	"fmt"
	"math"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"gonum.org/v1/gonum/stat"
)

// GenerationalDistance is the mean distance from each approximation point
// to its nearest reference point.
func GenerationalDistance(ref, front []framework.ObjectiveSpacePoint) (float64, error) {
	return GenerationalDistancePow(ref, front, 1)
}

// GenerationalDistancePow generalizes GenerationalDistance to
// (sum(d^pow))^(1/pow) / N. A power of 1 gives the arithmetic mean.
func GenerationalDistancePow(ref, front []framework.ObjectiveSpacePoint, pow float64) (float64, error) {
	if _, err := checkFronts(ref, front); err != nil {
		return 0, err
	}
	return distancePow(front, ref, Euclidean, pow)
}

// InvertedGenerationalDistance is the mean distance from each reference
// point to its nearest approximation point.
func InvertedGenerationalDistance(ref, front []framework.ObjectiveSpacePoint) (float64, error) {
	return InvertedGenerationalDistancePow(ref, front, 1)
}

// InvertedGenerationalDistancePow is the IGD counterpart of GenerationalDistancePow.
func InvertedGenerationalDistancePow(ref, front []framework.ObjectiveSpacePoint, pow float64) (float64, error) {
	if _, err := checkFronts(ref, front); err != nil {
		return 0, err
	}
	return distancePow(ref, front, Euclidean, pow)
}

// InvertedGenerationalDistancePlus is IGD measured with DominanceDistance
// from the approximation point to the reference point, so approximation
// points that are better than the reference are not penalized.
func InvertedGenerationalDistancePlus(ref, front []framework.ObjectiveSpacePoint) (float64, error) {
	if _, err := checkFronts(ref, front); err != nil {
		return 0, err
	}
	return distancePow(ref, front, DominanceDistance, 1)
}

// distancePow aggregates the nearest distances from every point of `from`
// to the `to` front. dist is called as dist(toPoint, fromPoint).
func distancePow(from, to []framework.ObjectiveSpacePoint, dist DistanceFunc, pow float64) (float64, error) {
	if pow <= 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 0, fmt.Errorf("distance power must be a positive finite number, got %g", pow)
	}

	distances := make([]float64, len(from))
	for i, p := range from {
		distances[i] = NearestDistance(p, to, dist)
	}
	if pow == 1 {
		return stat.Mean(distances, nil), nil
	}

	sum := 0.0
	for _, d := range distances {
		sum += math.Pow(d, pow)
	}
	return math.Pow(sum, 1/pow) / float64(len(distances)), nil
}
