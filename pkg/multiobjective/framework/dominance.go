package framework

import "fmt"

// ConstrainedSolution is a candidate solution exposing its objective vector
// and its constraint violation vector.
type ConstrainedSolution interface {
	ObjectiveValues() []float64
	ConstraintViolations() []float64
}

// Dominates checks if point a Pareto-dominates point b under minimization:
// a is no worse than b on every objective and strictly better on one.
// Both points must have the same number of objectives.
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// ComparePoints returns -1 if a dominates b, 1 if b dominates a and 0 when
// the points are mutually non-dominated.
func ComparePoints(a, b ObjectiveSpacePoint) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d objectives", ErrDimensionMismatch, len(a), len(b))
	}
	return compareObjectives(a, b), nil
}

// TotalViolation sums the positive entries of a constraint violation vector.
func TotalViolation(v []float64) float64 {
	total := 0.0
	for _, x := range v {
		if x > 0 {
			total += x
		}
	}
	return total
}

// CompareConstrained ranks two solutions taking constraint violations into
// account. The solution with the larger total violation is dominated
// whatever its objectives are. When the totals are equal (in particular when
// both are feasible) the result falls back to Pareto dominance on the
// objectives. It returns -1 if a dominates, 1 if b dominates and 0 otherwise.
func CompareConstrained(a, b ConstrainedSolution) (int, error) {
	va, vb := a.ConstraintViolations(), b.ConstraintViolations()
	if len(va) != len(vb) {
		return 0, fmt.Errorf("%w: %d vs %d constraints", ErrDimensionMismatch, len(va), len(vb))
	}
	oa, ob := a.ObjectiveValues(), b.ObjectiveValues()
	if len(oa) != len(ob) {
		return 0, fmt.Errorf("%w: %d vs %d objectives", ErrDimensionMismatch, len(oa), len(ob))
	}
	return compareConstrained(va, vb, oa, ob), nil
}

func compareConstrained(va, vb, oa, ob []float64) int {
	ta, tb := TotalViolation(va), TotalViolation(vb)
	switch {
	case ta < tb:
		return -1
	case tb < ta:
		return 1
	}
	return compareObjectives(oa, ob)
}

func compareObjectives(a, b []float64) int {
	if Dominates(a, b) {
		return -1
	}
	if Dominates(b, a) {
		return 1
	}
	return 0
}

// NonDominatedSort performs constrained non-dominated sorting on the population.
// Individuals must come from the same problem, so their vectors line up.
func NonDominatedSort(population []Individual) [][]Individual {
	if len(population) == 0 {
		return nil
	}

	var fronts [][]Individual
	dominated := make([][]int, len(population))
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		for j := 0; j < len(population); j++ {
			if i == j {
				continue
			}
			switch compareConstrained(population[i].Violations, population[j].Violations,
				population[i].Objectives, population[j].Objectives) {
			case -1:
				dominated[i] = append(dominated[i], j)
			case 1:
				domCount[i]++
			}
		}
	}

	// Find first front
	currentFront := []Individual{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			population[i].Rank = 0
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	frontIndex := 0
	for len(currentFront) > 0 {
		nextFront := []Individual{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					population[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		frontIndex++
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}

// FirstFront returns the objective vectors of the non-dominated individuals.
func FirstFront(population []Individual) []ObjectiveSpacePoint {
	fronts := NonDominatedSort(population)
	if len(fronts) == 0 {
		return nil
	}
	out := make([]ObjectiveSpacePoint, len(fronts[0]))
	for i, ind := range fronts[0] {
		out[i] = ObjectiveSpacePoint(ind.Objectives).Clone()
	}
	return out
}
