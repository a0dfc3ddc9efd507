/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameterSetIsValid(t *testing.T) {
	p := DefaultParameterSet()

	assert.NoError(t, p.Validate())
	assert.Equal(t, 87600.0, p.LifeHours)
}

func TestParameterSetValidate(t *testing.T) {
	tests := []struct {
		testName string
		modify   func(p *ParameterSet)
		field    string
	}{
		{"absolute_zero", func(p *ParameterSet) { p.UseTemperature = -273.15 }, "useTemperature(K)"},
		{"humidity_over_100", func(p *ParameterSet) { p.UseHumidity = 100.5 }, "useHumidity"},
		{"stress_humidity_zero", func(p *ParameterSet) { p.StressHumidity = 0 }, "stressHumidity"},
		{"activation_energy_zero", func(p *ParameterSet) { p.ActivationEnergy = 0 }, "activationEnergy"},
		{"peck_exponent_nan", func(p *ParameterSet) { p.PeckExponent = math.NaN() }, "peckExponent"},
		{"mech_derating_negative", func(p *ParameterSet) { p.MechDerating = -0.1 }, "mechDerating"},
		{"confidence_one", func(p *ParameterSet) { p.Confidence = 1 }, "confidence"},
		{"reliability_zero", func(p *ParameterSet) { p.Reliability = 0 }, "reliability"},
		{"beta_zero", func(p *ParameterSet) { p.Beta = 0 }, "beta"},
		{"life_zero", func(p *ParameterSet) { p.LifeHours = 0 }, "lifeHours"},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			p := DefaultParameterSet()
			test.modify(&p)

			var domainErr *DomainError
			require.ErrorAs(t, p.Validate(), &domainErr)
			assert.Equal(t, test.field, domainErr.Field)
			assert.Contains(t, domainErr.Error(), test.field)
		})
	}
}

func TestHumidityBoundary(t *testing.T) {
	assert.NoError(t, CheckHumidity("useHumidity", 100))
	assert.Error(t, CheckHumidity("useHumidity", 0))
}

func TestSampleRange(t *testing.T) {
	r := DefaultSampleRange()
	assert.Equal(t, 30, r.Len())
	assert.NoError(t, r.Validate())

	assert.Equal(t, 0, SampleRange{Start: 3, End: 2}.Len())
	assert.Error(t, SampleRange{Start: 3, End: 2}.Validate())
	assert.Error(t, SampleRange{Start: 0, End: 2}.Validate())
}

func TestModelNames(t *testing.T) {
	assert.Equal(t, "Eyring + Derating", EyringDerating.String())
	assert.Equal(t, "eyring_derating", EyringDerating.Slug())
	assert.Equal(t, "weibull", Weibull.String())
}

func TestCeilDays(t *testing.T) {
	tests := []struct {
		testName  string
		days      float64
		expected  int
		expectErr bool
	}{
		{testName: "fraction", days: 143.3059, expected: 144},
		{testName: "whole", days: 11, expected: 11},
		{testName: "large", days: 1e18, expected: 1_000_000_000_000_000_000},
		{testName: "max_int_boundary", days: math.MaxInt64, expectErr: true},
		{testName: "infinite", days: math.Inf(1), expectErr: true},
		{testName: "nan", days: math.NaN(), expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			rounded, err := CeilDays(test.days)
			if test.expectErr {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "testTimeDays", domainErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, rounded)
		})
	}
}
