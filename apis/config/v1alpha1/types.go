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


package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupName is the group name used in this package
const GroupName = "moo-quality.config"

// SchemeGroupVersion is group version used to register these objects
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// Kind is the only kind served by this group version.
const Kind = "EvaluationConfiguration"

// EvaluationConfiguration tunes how quality indicators are computed
type EvaluationConfiguration struct {
	metav1.TypeMeta `json:",inline"`

	// Normalize rescales both fronts with the bounds of the reference front
	// before evaluating. The command line argument overrides it when given.
	Normalize *bool `json:"normalize,omitempty"`

	// Parallelism is the number of indicators evaluated at once in ALL mode.
	// Zero means unbounded.
	Parallelism *int32 `json:"parallelism,omitempty"`

	// Timeout bounds a whole evaluation. Zero disables the deadline.
	Timeout *metav1.Duration `json:"timeout,omitempty"`

	// DistancePower is the exponent p of GD and IGD
	DistancePower *float64 `json:"distancePower,omitempty"`

	Hypervolume HypervolumeArgs `json:"hypervolume,omitempty"`
	R2          R2Args          `json:"r2,omitempty"`
	ErrorRatio  ErrorRatioArgs  `json:"errorRatio,omitempty"`
}

// HypervolumeArgs holds arguments used to configure the hypervolume indicator
type HypervolumeArgs struct {
	// ReferencePoint in raw objective space. When empty, the per-objective
	// maximum of the reference front shifted by Offset is used.
	ReferencePoint []float64 `json:"referencePoint,omitempty"`
	Offset         *float64  `json:"offset,omitempty"`
}

// R2Args holds arguments used to configure the R2 indicator
type R2Args struct {
	// Divisions of the simplex lattice weights. Unset picks a value based on
	// the number of objectives.
	Divisions *int32 `json:"divisions,omitempty"`
	// Weights replaces the generated lattice when set.
	Weights [][]float64 `json:"weights,omitempty"`
}

// ErrorRatioArgs holds arguments used to configure the error ratio indicator
type ErrorRatioArgs struct {
	// Tolerance is the per-objective distance under which two points coincide
	Tolerance *float64 `json:"tolerance,omitempty"`
}
