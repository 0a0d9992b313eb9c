/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package validation

import (
	"math"

	"github.com/mihai-snyk/moo-quality/apis/config/v1alpha1"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/indicators"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ValidateEvaluationConfiguration ensures validation of the EvaluationConfiguration struct
func ValidateEvaluationConfiguration(cfg *v1alpha1.EvaluationConfiguration) field.ErrorList {
	var allErrs field.ErrorList

	if cfg.APIVersion != v1alpha1.SchemeGroupVersion.String() {
		allErrs = append(allErrs, field.Invalid(field.NewPath("apiVersion"), cfg.APIVersion,
			"must be "+v1alpha1.SchemeGroupVersion.String()))
	}
	if cfg.Kind != v1alpha1.Kind {
		allErrs = append(allErrs, field.Invalid(field.NewPath("kind"), cfg.Kind, "must be "+v1alpha1.Kind))
	}

	if cfg.Parallelism != nil && *cfg.Parallelism < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("parallelism"), *cfg.Parallelism, "must be greater than or equal to 0"))
	}
	if cfg.Timeout != nil && cfg.Timeout.Duration < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("timeout"), cfg.Timeout.Duration.String(), "must be greater than or equal to 0"))
	}
	if cfg.DistancePower != nil && !(isFinite(*cfg.DistancePower) && *cfg.DistancePower > 0) {
		allErrs = append(allErrs, field.Invalid(field.NewPath("distancePower"), *cfg.DistancePower, "must be a positive number"))
	}

	allErrs = append(allErrs, validateHypervolumeArgs(field.NewPath("hypervolume"), &cfg.Hypervolume)...)
	allErrs = append(allErrs, validateR2Args(field.NewPath("r2"), &cfg.R2)...)

	if tol := cfg.ErrorRatio.Tolerance; tol != nil && !(isFinite(*tol) && *tol >= 0) {
		allErrs = append(allErrs, field.Invalid(field.NewPath("errorRatio", "tolerance"), *tol, "must be greater than or equal to 0"))
	}

	return allErrs
}

func validateHypervolumeArgs(path *field.Path, args *v1alpha1.HypervolumeArgs) field.ErrorList {
	var allErrs field.ErrorList
	for i, v := range args.ReferencePoint {
		if !isFinite(v) {
			allErrs = append(allErrs, field.Invalid(path.Child("referencePoint").Index(i), v, "must be a finite number"))
		}
	}
	if args.Offset != nil && !(isFinite(*args.Offset) && *args.Offset >= 0) {
		allErrs = append(allErrs, field.Invalid(path.Child("offset"), *args.Offset, "must be greater than or equal to 0"))
	}
	if len(args.ReferencePoint) > 0 && args.Offset != nil && *args.Offset != 0 {
		allErrs = append(allErrs, field.Forbidden(path.Child("offset"), "cannot be combined with an explicit referencePoint"))
	}
	return allErrs
}

func validateR2Args(path *field.Path, args *v1alpha1.R2Args) field.ErrorList {
	var allErrs field.ErrorList
	if args.Divisions != nil && *args.Divisions <= 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("divisions"), *args.Divisions, "must be greater than 0"))
	}
	if args.Divisions != nil && len(args.Weights) > 0 {
		allErrs = append(allErrs, field.Forbidden(path.Child("divisions"), "cannot be combined with explicit weights"))
	}

	weightsPath := path.Child("weights")
	for i, w := range args.Weights {
		if len(w) == 0 {
			allErrs = append(allErrs, field.Required(weightsPath.Index(i), "weight vector must not be empty"))
			continue
		}
		if len(w) != len(args.Weights[0]) {
			allErrs = append(allErrs, field.Invalid(weightsPath.Index(i), w, "all weight vectors must have the same length"))
		}
		sum := 0.0
		for j, v := range w {
			if !isFinite(v) || v < 0 {
				allErrs = append(allErrs, field.Invalid(weightsPath.Index(i).Index(j), v, "must be a non-negative finite number"))
			}
			sum += v
		}
		if sum == 0 {
			allErrs = append(allErrs, field.Invalid(weightsPath.Index(i), w, "must have at least one positive component"))
		}
	}
	return allErrs
}

// ValidateIndicator checks that id names a registered indicator or ALL.
func ValidateIndicator(path *field.Path, id string) *field.Error {
	known := sets.New(indicators.Names()...)
	if !known.Has(id) {
		return field.NotSupported(path, id, sets.List(known))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
