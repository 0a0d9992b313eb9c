package framework

// Individual represents a solution in the population
type Individual struct {
	Variables  []float64
	Objectives []float64

	// Violations holds one entry per constraint. Non-positive entries mean
	// the constraint is satisfied, positive entries the amount it is violated by.
	Violations []float64

	// Rank is NSGA-II specific
	Rank int
	// Distance is NSGA-II specific
	Distance float64
}

// ObjectiveValues implements ConstrainedSolution.
func (ind Individual) ObjectiveValues() []float64 {
	return ind.Objectives
}

// ConstraintViolations implements ConstrainedSolution.
func (ind Individual) ConstraintViolations() []float64 {
	return ind.Violations
}

// Feasible reports whether no constraint of the individual is violated.
func (ind Individual) Feasible() bool {
	return TotalViolation(ind.Violations) == 0
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func([]float64) float64

// ConstraintFunc returns the violation of a single constraint for the given
// decision variables: <= 0 when satisfied, the violated amount otherwise.
type ConstraintFunc func([]float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	// LowerBounds and UpperBounds delimit each decision variable.
	LowerBounds() []float64
	UpperBounds() []float64

	ObjectiveFuncs() []ObjectiveFunc

	// Constraints returns nil for unconstrained problems.
	Constraints() []ConstraintFunc

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Algorithm describes the contract that a MOO algorithm needs to implement.
type Algorithm interface {
	Name() string
	Run() []Individual
}
