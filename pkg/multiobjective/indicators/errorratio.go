package indicators

import (
	"fmt"
	"math"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// ErrorRatio returns the fraction of approximation points that do not
// coincide with any reference point. Two points coincide when every
// objective differs by at most tolerance; a tolerance of 0 means exact.
func ErrorRatio(ref, front []framework.ObjectiveSpacePoint, tolerance float64) (float64, error) {
	if _, err := checkFronts(ref, front); err != nil {
		return 0, err
	}
	if tolerance < 0 || math.IsNaN(tolerance) {
		return 0, fmt.Errorf("error ratio tolerance must be non-negative, got %g", tolerance)
	}

	misses := 0
	for _, a := range front {
		if !containsPoint(ref, a, tolerance) {
			misses++
		}
	}
	return float64(misses) / float64(len(front)), nil
}

func containsPoint(front []framework.ObjectiveSpacePoint, p framework.ObjectiveSpacePoint, tolerance float64) bool {
	for _, q := range front {
		match := true
		for i := range p {
			if math.Abs(p[i]-q[i]) > tolerance {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
