package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mihai-snyk/moo-quality/apis/config/validation"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/frontio"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/indicators"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"
)

type evaluateOptions struct {
	*Options

	Output   string
	PlotFile string
}

func (o *evaluateOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", outputText, "Output format. One of: text|yaml|json.")
	fs.StringVar(&o.PlotFile, "plot", o.PlotFile, "Also render both fronts to this HTML file. Two objectives only.")
}

func newEvaluateCommand(parent *Options) *cobra.Command {
	o := &evaluateOptions{Options: parent}

	cmd := &cobra.Command{
		Use:   "evaluate INDICATOR REFERENCE_FRONT FRONT [TRUE|FALSE]",
		Short: "Compute a quality indicator of FRONT against REFERENCE_FRONT",
		Long: fmt.Sprintf(`Compute a quality indicator of FRONT against REFERENCE_FRONT.

INDICATOR is one of %v. ALL prints every indicator followed by both
directions of set coverage. The optional last argument turns normalization
on (TRUE) or off (FALSE) and overrides the configuration file.

Fronts are text files with one point per line and whitespace separated
objective values.`, indicators.Names()),
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

func (o *evaluateOptions) run(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := validation.ValidateIndicator(field.NewPath("indicator"), id); err != nil {
		return err
	}
	if err := validateOutput(o.Output); err != nil {
		return err
	}

	cfg, err := loadConfig(o.ConfigFile)
	if err != nil {
		return err
	}
	opts := indicatorOptions(cfg)
	if len(args) == 4 {
		if opts.Normalize, err = parseNormalize(args[3]); err != nil {
			return err
		}
	}

	ctx := commandContext(cmd)
	logger := klog.FromContext(ctx).WithName("evaluate")
	ctx = klog.NewContext(ctx, logger)
	if d := cfg.Timeout.Duration; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	loader := frontio.NewLoader(logger, frontio.DefaultCacheTTL)
	ref, err := loader.Load(args[1])
	if err != nil {
		return err
	}
	front, err := loader.Load(args[2])
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := indicators.Run(ctx, id, ref, front, opts)
	if err != nil {
		return err
	}
	logger.V(1).Info("Evaluation finished", "indicator", id, "normalize", opts.Normalize, "elapsed", time.Since(start))

	if err := printReport(cmd.OutOrStdout(), o.Output, id, opts.Normalize, report); err != nil {
		return err
	}

	if o.PlotFile != "" {
		title := fmt.Sprintf("%s vs %s", args[2], args[1])
		if err := util.PlotFrontsToFile(o.PlotFile, title, ref.Points(), front.Points()); err != nil {
			return fmt.Errorf("plotting: %w", err)
		}
		logger.V(1).Info("Wrote plot", "path", o.PlotFile)
	}

	return utilerrors.NewAggregate(report.Failed())
}

func parseNormalize(arg string) (bool, error) {
	switch arg {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	}
	return false, fmt.Errorf("the value for normalizing must be TRUE or FALSE, got %q", arg)
}
