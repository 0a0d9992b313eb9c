package benchmarks

import (
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// CONSTR is the two-variable constrained problem from Deb's NSGA-II paper:
//
//	f1 = x1, f2 = (1 + x2) / x1
//	x2 + 9*x1 >= 6
//	9*x1 - x2 >= 1
//
// with x1 in [0.1, 1] and x2 in [0, 5].
type CONSTR struct{}

func NewCONSTR() *CONSTR {
	return &CONSTR{}
}

func (p *CONSTR) Name() string {
	return "CONSTR"
}

func (p *CONSTR) LowerBounds() []float64 {
	return []float64{0.1, 0}
}

func (p *CONSTR) UpperBounds() []float64 {
	return []float64{1, 5}
}

func (p *CONSTR) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		func(x []float64) float64 { return x[0] },
		func(x []float64) float64 { return (1 + x[1]) / x[0] },
	}
}

func (p *CONSTR) Constraints() []framework.ConstraintFunc {
	return []framework.ConstraintFunc{
		func(x []float64) float64 { return 6 - (x[1] + 9*x[0]) },
		func(x []float64) float64 { return 1 - (9*x[0] - x[1]) },
	}
}

// TrueParetoFront follows the first constraint boundary for x1 in
// [7/18, 2/3] and x2 = 0 for x1 in [2/3, 1].
func (p *CONSTR) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if numPoints < 2 {
		return nil
	}
	const (
		start = 7.0 / 18.0
		knee  = 2.0 / 3.0
	)
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x1 := start + (1-start)*float64(i)/float64(numPoints-1)
		f2 := 1 / x1
		if x1 < knee {
			f2 = (7 - 9*x1) / x1
		}
		points[i] = framework.ObjectiveSpacePoint{x1, f2}
	}
	return points
}
