package indicators

import (
	"fmt"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// Coverage holds both directions of the set coverage metric for a
// (reference, approximation) pair.
type Coverage struct {
	// ReferenceOverFront is C(reference, approximation).
	ReferenceOverFront float64 `json:"referenceOverFront"`
	// FrontOverReference is C(approximation, reference).
	FrontOverReference float64 `json:"frontOverReference"`
}

// SetCoverage returns C(a, b), the fraction of points of b that are
// Pareto-dominated by at least one point of a. C(empty, b) is 0 and
// C(a, empty) is 1 for a non-empty a. The metric is not symmetric.
func SetCoverage(a, b []framework.ObjectiveSpacePoint) (float64, error) {
	if len(a) > 0 && len(b) > 0 {
		if _, err := checkFronts(a, b); err != nil {
			return 0, err
		}
	} else {
		for _, f := range [][]framework.ObjectiveSpacePoint{a, b} {
			if len(f) == 0 {
				continue
			}
			if _, err := frontDimension(f, "coverage"); err != nil {
				return 0, err
			}
		}
	}

	switch {
	case len(a) == 0:
		return 0, nil
	case len(b) == 0:
		return 1, nil
	}

	covered := 0
	for _, q := range b {
		for _, p := range a {
			if framework.Dominates(p, q) {
				covered++
				break
			}
		}
	}
	return float64(covered) / float64(len(b)), nil
}

// SetCoverageBoth evaluates SetCoverage in both directions.
func SetCoverageBoth(ref, front []framework.ObjectiveSpacePoint) (Coverage, error) {
	ab, err := SetCoverage(ref, front)
	if err != nil {
		return Coverage{}, fmt.Errorf("C(reference, front): %w", err)
	}
	ba, err := SetCoverage(front, ref)
	if err != nil {
		return Coverage{}, fmt.Errorf("C(front, reference): %w", err)
	}
	return Coverage{
		ReferenceOverFront: ab,
		FrontOverReference: ba,
	}, nil
}
