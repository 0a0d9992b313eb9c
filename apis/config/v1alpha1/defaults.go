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
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

var (
	defaultNormalize     = false
	defaultParallelism   = int32(4)
	defaultTimeout       = metav1.Duration{Duration: 5 * time.Minute}
	defaultDistancePower = 1.0
	defaultOffset        = 0.0
	defaultTolerance     = 0.0
)

// SetDefaults_EvaluationConfiguration sets the default parameters for an evaluation.
func SetDefaults_EvaluationConfiguration(obj *EvaluationConfiguration) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion.String()
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}
	if obj.Normalize == nil {
		obj.Normalize = ptr.To(defaultNormalize)
	}
	if obj.Parallelism == nil {
		obj.Parallelism = ptr.To(defaultParallelism)
	}
	if obj.Timeout == nil {
		obj.Timeout = ptr.To(defaultTimeout)
	}
	if obj.DistancePower == nil {
		obj.DistancePower = ptr.To(defaultDistancePower)
	}
	if obj.Hypervolume.Offset == nil {
		obj.Hypervolume.Offset = ptr.To(defaultOffset)
	}
	if obj.ErrorRatio.Tolerance == nil {
		obj.ErrorRatio.Tolerance = ptr.To(defaultTolerance)
	}
}

// NewDefaultEvaluationConfiguration returns a fully defaulted configuration.
func NewDefaultEvaluationConfiguration() *EvaluationConfiguration {
	cfg := &EvaluationConfiguration{}
	SetDefaults_EvaluationConfiguration(cfg)
	return cfg
}
