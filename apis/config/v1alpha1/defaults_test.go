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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

func TestSetDefaults_EvaluationConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		config *EvaluationConfiguration
		want   *EvaluationConfiguration
	}{
		{
			name:   "empty config",
			config: &EvaluationConfiguration{},
			want: &EvaluationConfiguration{
				TypeMeta:      metav1.TypeMeta{APIVersion: "moo-quality.config/v1alpha1", Kind: "EvaluationConfiguration"},
				Normalize:     ptr.To(false),
				Parallelism:   ptr.To[int32](4),
				Timeout:       &metav1.Duration{Duration: 5 * time.Minute},
				DistancePower: ptr.To(1.0),
				Hypervolume:   HypervolumeArgs{Offset: ptr.To(0.0)},
				ErrorRatio:    ErrorRatioArgs{Tolerance: ptr.To(0.0)},
			},
		},
		{
			name: "set fields are kept",
			config: &EvaluationConfiguration{
				Normalize:     ptr.To(true),
				Parallelism:   ptr.To[int32](1),
				Timeout:       &metav1.Duration{Duration: time.Second},
				DistancePower: ptr.To(2.0),
				Hypervolume:   HypervolumeArgs{ReferencePoint: []float64{1, 1}, Offset: ptr.To(0.1)},
				R2:            R2Args{Divisions: ptr.To[int32](10)},
				ErrorRatio:    ErrorRatioArgs{Tolerance: ptr.To(1e-6)},
			},
			want: &EvaluationConfiguration{
				TypeMeta:      metav1.TypeMeta{APIVersion: "moo-quality.config/v1alpha1", Kind: "EvaluationConfiguration"},
				Normalize:     ptr.To(true),
				Parallelism:   ptr.To[int32](1),
				Timeout:       &metav1.Duration{Duration: time.Second},
				DistancePower: ptr.To(2.0),
				Hypervolume:   HypervolumeArgs{ReferencePoint: []float64{1, 1}, Offset: ptr.To(0.1)},
				R2:            R2Args{Divisions: ptr.To[int32](10)},
				ErrorRatio:    ErrorRatioArgs{Tolerance: ptr.To(1e-6)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetDefaults_EvaluationConfiguration(tt.config)
			if diff := cmp.Diff(tt.want, tt.config); diff != "" {
				t.Errorf("unexpected defaults (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestDefaultTimeoutIsNotShared(t *testing.T) {
	a := NewDefaultEvaluationConfiguration()
	a.Timeout.Duration = time.Second
	b := NewDefaultEvaluationConfiguration()
	if b.Timeout.Duration != 5*time.Minute {
		t.Errorf("default timeout mutated through another config: %v", b.Timeout.Duration)
	}
}
