package app

import (
	"fmt"
	"os"

	"github.com/mihai-snyk/moo-quality/apis/config/v1alpha1"
	"github.com/mihai-snyk/moo-quality/apis/config/validation"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/indicators"
	"sigs.k8s.io/yaml"
)

// loadConfig reads, defaults and validates the configuration at path. An
// empty path yields the defaults.
func loadConfig(path string) (*v1alpha1.EvaluationConfiguration, error) {
	cfg := &v1alpha1.EvaluationConfiguration{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("decoding config %s: %w", path, err)
		}
	}

	v1alpha1.SetDefaults_EvaluationConfiguration(cfg)
	if errs := validation.ValidateEvaluationConfiguration(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config %s: %w", path, errs.ToAggregate())
	}
	return cfg, nil
}

// indicatorOptions converts a defaulted configuration.
func indicatorOptions(cfg *v1alpha1.EvaluationConfiguration) indicators.Options {
	opts := indicators.Options{
		Normalize:            *cfg.Normalize,
		Parallelism:          int(*cfg.Parallelism),
		DistancePower:        *cfg.DistancePower,
		ReferencePointOffset: *cfg.Hypervolume.Offset,
		Tolerance:            *cfg.ErrorRatio.Tolerance,
	}
	// An empty list in the file means "use the default".
	if len(cfg.Hypervolume.ReferencePoint) > 0 {
		opts.ReferencePoint = cfg.Hypervolume.ReferencePoint
	}
	if len(cfg.R2.Weights) > 0 {
		opts.Weights = cfg.R2.Weights
	}
	if cfg.R2.Divisions != nil {
		opts.Divisions = int(*cfg.R2.Divisions)
	}
	return opts
}
