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
	"testing"
	"time"

	"github.com/mihai-snyk/moo-quality/apis/config/v1alpha1"
	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"
)

func TestValidateEvaluationConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*v1alpha1.EvaluationConfiguration)
		wantFields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*v1alpha1.EvaluationConfiguration) {},
		},
		{
			name: "wrong apiVersion and kind",
			mutate: func(c *v1alpha1.EvaluationConfiguration) {
				c.APIVersion = "v1"
				c.Kind = "Pod"
			},
			wantFields: []string{"apiVersion", "kind"},
		},
		{
			name: "negative scalars",
			mutate: func(c *v1alpha1.EvaluationConfiguration) {
				c.Parallelism = ptr.To[int32](-1)
				c.Timeout = &metav1.Duration{Duration: -time.Second}
				c.DistancePower = ptr.To(0.0)
				c.ErrorRatio.Tolerance = ptr.To(-0.5)
			},
			wantFields: []string{"parallelism", "timeout", "distancePower", "errorRatio.tolerance"},
		},
		{
			name: "hypervolume reference point",
			mutate: func(c *v1alpha1.EvaluationConfiguration) {
				c.Hypervolume.ReferencePoint = []float64{1, math.NaN()}
				c.Hypervolume.Offset = ptr.To(0.5)
			},
			wantFields: []string{"hypervolume.referencePoint[1]", "hypervolume.offset"},
		},
		{
			name: "r2 weights",
			mutate: func(c *v1alpha1.EvaluationConfiguration) {
				c.R2.Weights = [][]float64{{0.5, 0.5}, {1}, {0, 0}, {}, {-1, 2}}
			},
			wantFields: []string{"r2.weights[1]", "r2.weights[2]", "r2.weights[3]", "r2.weights[4][0]"},
		},
		{
			name: "r2 divisions",
			mutate: func(c *v1alpha1.EvaluationConfiguration) {
				c.R2.Divisions = ptr.To[int32](0)
				c.R2.Weights = [][]float64{{1, 0}}
			},
			wantFields: []string{"r2.divisions", "r2.divisions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := v1alpha1.NewDefaultEvaluationConfiguration()
			tt.mutate(cfg)

			errs := ValidateEvaluationConfiguration(cfg)
			var got []string
			for _, err := range errs {
				got = append(got, err.Field)
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestValidateIndicator(t *testing.T) {
	path := field.NewPath("indicator")
	for _, id := range []string{"GD", "IGD+", "HV", "SC", "ALL"} {
		assert.Nil(t, ValidateIndicator(path, id), id)
	}

	err := ValidateIndicator(path, "XYZ")
	if assert.NotNil(t, err) {
		assert.Equal(t, field.ErrorTypeNotSupported, err.Type)
		assert.Contains(t, err.Error(), "IGD+")
	}
	assert.NotNil(t, ValidateIndicator(path, "gd"))
}
