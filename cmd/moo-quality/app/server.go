package app

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options are the flags shared by every subcommand.
type Options struct {
	// ConfigFile is the path of an EvaluationConfiguration file.
	ConfigFile string
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to an EvaluationConfiguration file (YAML or JSON).")
}

// NewCommand creates the moo-quality root command with its subcommands.
func NewCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "moo-quality",
		Short: "Quality indicators for multi-objective optimization fronts",
		Long: `moo-quality measures how well an approximation front matches a reference
Pareto front, using GD, IGD, IGD+, hypervolume, epsilon, spread, generalized
spread, R2, error ratio and set coverage.`,
		SilenceUsage: true,
	}
	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newEvaluateCommand(opts),
		newFrontCommand(),
		newSolveCommand(),
	)
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
