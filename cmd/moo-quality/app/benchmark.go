package app

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/frontio"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

type frontOptions struct {
	Points     int
	Variables  int
	OutputFile string
}

func (o *frontOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Points, "points", 100, "Number of points sampled on the true Pareto front.")
	fs.IntVar(&o.Variables, "variables", benchmarks.DefaultVariables, "Number of decision variables of the problem.")
	fs.StringVarP(&o.OutputFile, "output-file", "f", o.OutputFile, "Write the front to this file instead of stdout.")
}

func newFrontCommand() *cobra.Command {
	o := &frontOptions{}
	cmd := &cobra.Command{
		Use:   "front PROBLEM",
		Short: "Write the sampled true Pareto front of a benchmark problem",
		Long:  fmt.Sprintf("Write the sampled true Pareto front of a benchmark problem, one of %v.", benchmarks.Names()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.Points < 2 {
				return fmt.Errorf("--points must be at least 2, got %d", o.Points)
			}
			problem, err := benchmarks.Lookup(args[0], o.Variables)
			if err != nil {
				return err
			}
			front := problem.TrueParetoFront(o.Points)
			if len(front) == 0 {
				return fmt.Errorf("%s has no sampled true front for this configuration", problem.Name())
			}
			return writeFront(cmd, o.OutputFile, front)
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

type solveOptions struct {
	Variables   int
	Population  int
	Generations int
	Seed        uint64
	OutputFile  string
	PlotFile    string
}

func (o *solveOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Variables, "variables", benchmarks.DefaultVariables, "Number of decision variables of the problem.")
	fs.IntVar(&o.Population, "population", 100, "NSGA-II population size.")
	fs.IntVar(&o.Generations, "generations", 250, "NSGA-II generations.")
	fs.Uint64Var(&o.Seed, "seed", 1, "Random seed.")
	fs.StringVarP(&o.OutputFile, "output-file", "f", o.OutputFile, "Write the obtained front to this file instead of stdout.")
	fs.StringVar(&o.PlotFile, "plot", o.PlotFile, "Also render the obtained front against the true front to this HTML file.")
}

func newSolveCommand() *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve PROBLEM",
		Short: "Run NSGA-II on a benchmark problem and write the first front",
		Long: fmt.Sprintf(`Run NSGA-II on a benchmark problem, one of %v, and write the
non-dominated individuals of the final population. The output can be fed to
"evaluate" as FRONT.`, benchmarks.Names()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

func (o *solveOptions) run(cmd *cobra.Command, name string) error {
	if o.Population < 2 || o.Generations < 0 {
		return fmt.Errorf("--population must be at least 2 and --generations non-negative")
	}
	problem, err := benchmarks.Lookup(name, o.Variables)
	if err != nil {
		return err
	}

	config := algorithms.DefaultNSGA2Config(len(problem.LowerBounds()))
	config.PopulationSize = o.Population
	config.MaxGenerations = o.Generations
	config.Seed = o.Seed

	logger := klog.FromContext(commandContext(cmd)).WithName("solve")
	start := time.Now()
	nsga := algorithms.NewNSGAII(config, problem)
	population := nsga.Run()
	front := framework.FirstFront(population)
	logger.V(1).Info("Search finished", "problem", problem.Name(), "algorithm", nsga.Name(),
		"evaluations", humanize.Comma(int64(config.PopulationSize)*int64(config.MaxGenerations+1)),
		"solutions", len(front), "elapsed", time.Since(start))

	if o.PlotFile != "" {
		title := fmt.Sprintf("%s Results for %s Benchmark", nsga.Name(), problem.Name())
		if err := util.PlotFrontsToFile(o.PlotFile, title, problem.TrueParetoFront(100), front); err != nil {
			return fmt.Errorf("plotting: %w", err)
		}
	}
	return writeFront(cmd, o.OutputFile, front)
}

func writeFront(cmd *cobra.Command, path string, front []framework.ObjectiveSpacePoint) error {
	if path == "" {
		return frontio.WriteFront(cmd.OutOrStdout(), front)
	}
	return frontio.SaveFront(path, front)
}
