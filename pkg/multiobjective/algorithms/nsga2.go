package algorithms

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

const (
	Name = "NSGA-II"
)

// NSGA2Config holds the NSGA-II parameters.
type NSGA2Config struct {
	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	MutationProbability  float64
	// Seed makes runs reproducible.
	Seed uint64
}

// DefaultNSGA2Config returns the usual settings for a problem with numVars
// decision variables.
func DefaultNSGA2Config(numVars int) NSGA2Config {
	mutation := 0.1
	if numVars > 0 {
		mutation = 1.0 / float64(numVars)
	}
	return NSGA2Config{
		PopulationSize:       100,
		MaxGenerations:       250,
		CrossoverProbability: 0.9,
		MutationProbability:  mutation,
		Seed:                 1,
	}
}

// NSGAII represents the NSGA-II algorithm configuration
type NSGAII struct {
	config      NSGA2Config
	varMin      []float64
	varMax      []float64
	objectives  []framework.ObjectiveFunc
	constraints []framework.ConstraintFunc
	rng         *rand.Rand
}

var _ framework.Algorithm = &NSGAII{}

// NewNSGAII creates a new instance of NSGA-II for the given problem
func NewNSGAII(config NSGA2Config, problem framework.Problem) *NSGAII {
	if config.PopulationSize%2 == 1 {
		config.PopulationSize++
	}
	return &NSGAII{
		config:      config,
		varMin:      problem.LowerBounds(),
		varMax:      problem.UpperBounds(),
		objectives:  problem.ObjectiveFuncs(),
		constraints: problem.Constraints(),
		rng:         rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15)),
	}
}

func (n *NSGAII) Name() string {
	return Name
}

// Config returns the effective configuration.
func (n *NSGAII) Config() NSGA2Config {
	return n.config
}

// Initialize creates an initial random population of individuals
func (n *NSGAII) Initialize() []framework.Individual {
	population := make([]framework.Individual, n.config.PopulationSize)

	for i := range population {
		vars := make([]float64, len(n.varMin))
		for j := range vars {
			vars[j] = n.varMin[j] + n.rng.Float64()*(n.varMax[j]-n.varMin[j])
		}
		population[i] = framework.Individual{Variables: vars}
		n.Evaluate(&population[i])
	}

	return population
}

// CrowdingDistance calculates crowding distance for individuals in a front
func CrowdingDistance(front []framework.Individual) {
	if len(front) <= 2 {
		for i := range front {
			front[i].Distance = math.Inf(1)
		}
		return
	}

	numObjectives := len(front[0].Objectives)
	for i := range front {
		front[i].Distance = 0
	}

	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		sort.Slice(front, func(i, j int) bool {
			return front[i].Objectives[m] < front[j].Objectives[m]
		})

		// Set boundary points to infinity
		front[0].Distance = math.Inf(1)
		front[len(front)-1].Distance = math.Inf(1)

		objectiveRange := front[len(front)-1].Objectives[m] - front[0].Objectives[m]
		if objectiveRange == 0 {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(front)-1; i++ {
			front[i].Distance += (front[i+1].Objectives[m] - front[i-1].Objectives[m]) / objectiveRange
		}
	}
}

// TournamentSelect runs a binary tournament on rank, then crowding distance.
// Ranks already account for constraint violations.
func (n *NSGAII) TournamentSelect(population []framework.Individual) framework.Individual {
	k := 2 // tournament size
	best := population[n.rng.IntN(len(population))]

	for i := 1; i < k; i++ {
		contestant := population[n.rng.IntN(len(population))]
		if contestant.Rank < best.Rank || (contestant.Rank == best.Rank && contestant.Distance > best.Distance) {
			best = contestant
		}
	}

	return best
}

// Crossover performs SBX (Simulated Binary Crossover)
func (n *NSGAII) Crossover(parent1, parent2 framework.Individual) (framework.Individual, framework.Individual) {
	child1 := framework.Individual{Variables: make([]float64, len(parent1.Variables))}
	child2 := framework.Individual{Variables: make([]float64, len(parent2.Variables))}

	if n.rng.Float64() < n.config.CrossoverProbability {
		for i := range parent1.Variables {
			beta := 0.0
			if n.rng.Float64() <= 0.5 {
				beta = math.Pow(2*n.rng.Float64(), 1.0/3.0)
			} else {
				beta = math.Pow(1.0/(2*(1.0-n.rng.Float64())), 1.0/3.0)
			}

			child1.Variables[i] = 0.5 * ((1+beta)*parent1.Variables[i] + (1-beta)*parent2.Variables[i])
			child2.Variables[i] = 0.5 * ((1-beta)*parent1.Variables[i] + (1+beta)*parent2.Variables[i])

			// Bound checking
			child1.Variables[i] = math.Max(n.varMin[i], math.Min(n.varMax[i], child1.Variables[i]))
			child2.Variables[i] = math.Max(n.varMin[i], math.Min(n.varMax[i], child2.Variables[i]))
		}
	} else {
		copy(child1.Variables, parent1.Variables)
		copy(child2.Variables, parent2.Variables)
	}

	return child1, child2
}

// Mutation performs polynomial mutation
func (n *NSGAII) Mutation(individual *framework.Individual) {
	for i := range individual.Variables {
		if n.rng.Float64() < n.config.MutationProbability {
			delta := 0.0
			if n.rng.Float64() <= 0.5 {
				delta = math.Pow(2*n.rng.Float64(), 1.0/3.0) - 1
			} else {
				delta = 1 - math.Pow(2*(1-n.rng.Float64()), 1.0/3.0)
			}

			individual.Variables[i] += delta * (n.varMax[i] - n.varMin[i])
			individual.Variables[i] = math.Max(n.varMin[i], math.Min(n.varMax[i], individual.Variables[i]))
		}
	}
}

// Evaluate calculates objective values and constraint violations for an individual
func (n *NSGAII) Evaluate(individual *framework.Individual) {
	individual.Objectives = make([]float64, len(n.objectives))
	for i, objFunc := range n.objectives {
		individual.Objectives[i] = objFunc(individual.Variables)
	}

	individual.Violations = make([]float64, len(n.constraints))
	for i, c := range n.constraints {
		individual.Violations[i] = c(individual.Variables)
	}
}

// Run executes the NSGA-II algorithm
func (n *NSGAII) Run() []framework.Individual {
	population := flatten(framework.NonDominatedSort(n.Initialize()), n.config.PopulationSize)

	for gen := 0; gen < n.config.MaxGenerations; gen++ {
		offspring := make([]framework.Individual, n.config.PopulationSize)

		// Generate offspring
		for i := 0; i < n.config.PopulationSize; i += 2 {
			parent1 := n.TournamentSelect(population)
			parent2 := n.TournamentSelect(population)

			child1, child2 := n.Crossover(parent1, parent2)

			n.Mutation(&child1)
			n.Mutation(&child2)

			n.Evaluate(&child1)
			n.Evaluate(&child2)

			offspring[i] = child1
			offspring[i+1] = child2
		}

		// Combine populations
		combined := append(population, offspring...)

		// Non-dominated sorting
		population = flatten(framework.NonDominatedSort(combined), n.config.PopulationSize)
	}

	return population
}

// flatten fills the next population front by front, breaking the last
// front by crowding distance.
func flatten(fronts [][]framework.Individual, size int) []framework.Individual {
	population := make([]framework.Individual, 0, size)
	for _, front := range fronts {
		CrowdingDistance(front)
		if len(population)+len(front) <= size {
			population = append(population, front...)
			continue
		}

		sort.Slice(front, func(i, j int) bool {
			return front[i].Distance > front[j].Distance
		})
		population = append(population, front[:size-len(population)]...)
		break
	}
	return population
}
