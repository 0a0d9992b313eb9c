package benchmarks

import (
	"math"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// zdt holds what ZDT1, ZDT2 and ZDT3 share: n variables in [0, 1], f1 = x1
// and the g function over the remaining variables.
type zdt struct {
	numVars int
}

func (p zdt) LowerBounds() []float64 {
	return make([]float64, p.numVars)
}

func (p zdt) UpperBounds() []float64 {
	b := make([]float64, p.numVars)
	for i := range b {
		b[i] = 1.0
	}
	return b
}

// This is an unconstrained problem
func (p zdt) Constraints() []framework.ConstraintFunc {
	return nil
}

func (p zdt) f1(x []float64) float64 {
	return x[0]
}

func (p zdt) g(x []float64) float64 {
	if len(x) < 2 {
		return 1.0
	}
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return g
}

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	zdt
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{zdt{numVars}}
}

func (p *ZDT1) Name() string {
	return "ZDT1"
}

func (p *ZDT1) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		p.f1, p.f2,
	}
}

func (p *ZDT1) f2(x []float64) float64 {
	g := p.g(x)
	return g * (1.0 - math.Sqrt(x[0]/g))
}

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	return sampleCurve(numPoints, func(x float64) float64 {
		return 1.0 - math.Sqrt(x)
	})
}

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	zdt
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{zdt{numVars}}
}

func (p *ZDT2) Name() string {
	return "ZDT2"
}

func (p *ZDT2) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT2) f2(x []float64) float64 {
	g := p.g(x)
	return g * (1.0 - math.Pow(x[0]/g, 2))
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	return sampleCurve(numPoints, func(x float64) float64 {
		return 1.0 - x*x
	})
}

// ZDT3 has a disconnected Pareto front
type ZDT3 struct {
	zdt
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{zdt{numVars}}
}

func (p *ZDT3) Name() string {
	return "ZDT3"
}

func (p *ZDT3) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT3) f2(x []float64) float64 {
	g := p.g(x)
	h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
	return g * h
}

// TrueParetoFront samples the g = 1 curve and keeps its non-dominated
// segments, so fewer than numPoints points are returned.
func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	curve := sampleCurve(numPoints, func(x float64) float64 {
		return 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
	})
	return nonDominated(curve)
}

// sampleCurve evaluates f2 = h(f1) on numPoints evenly spaced f1 values in [0, 1].
func sampleCurve(numPoints int, h func(float64) float64) []framework.ObjectiveSpacePoint {
	if numPoints <= 0 {
		return nil
	}
	if numPoints == 1 {
		return []framework.ObjectiveSpacePoint{{0, h(0)}}
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, h(x),
		}
	}
	return points
}

func nonDominated(points []framework.ObjectiveSpacePoint) []framework.ObjectiveSpacePoint {
	out := make([]framework.ObjectiveSpacePoint, 0, len(points))
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i != j && framework.Dominates(q, p) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, p)
		}
	}
	return out
}
