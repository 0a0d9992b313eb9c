package benchmarks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
)

// DefaultVariables is the decision vector length used when Lookup is given
// a non-positive count.
const DefaultVariables = 30

var problems = map[string]func(numVars int) framework.Problem{
	"ZDT1":   func(n int) framework.Problem { return NewZDT1(n) },
	"ZDT2":   func(n int) framework.Problem { return NewZDT2(n) },
	"ZDT3":   func(n int) framework.Problem { return NewZDT3(n) },
	"DTLZ2":  func(n int) framework.Problem { return NewDTLZ2(n, 3) },
	"CONSTR": func(int) framework.Problem { return NewCONSTR() },
}

// Lookup returns the named benchmark problem. Names are case-insensitive.
func Lookup(name string, numVars int) (framework.Problem, error) {
	newProblem, ok := problems[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("unknown problem %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	if numVars <= 0 {
		numVars = DefaultVariables
	}
	return newProblem(numVars), nil
}

// Names lists the available benchmark problems.
func Names() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
