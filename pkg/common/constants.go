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

const (
	// BoltzmannConstant in eV/K
	BoltzmannConstant = 8.617e-5
	// KelvinOffset converts degrees Celsius to Kelvin
	KelvinOffset = 273.15

	HoursPerDay = 24.0

	// TableDecimalPlaces is the precision of hours and days in sample-size tables.
	TableDecimalPlaces = 4
)

const (
	DefaultUseTemperature    = 25.0
	DefaultStressTemperature = 85.0
	DefaultUseHumidity       = 50.0
	DefaultStressHumidity    = 85.0
	DefaultActivationEnergy  = 0.9
	DefaultPeckExponent      = 3.0
	DefaultEyringExponent    = 2.0
	DefaultUVDerating        = 0.8
	DefaultThermalDerating   = 0.9
	DefaultMechDerating      = 0.95
	DefaultConfidence        = 0.9
	DefaultReliability       = 0.9
	DefaultBeta              = 1.0

	// DefaultLifeHours 10 years of continuous use
	DefaultLifeHours = 24 * 365 * 10

	DefaultSampleRangeStart = 1
	DefaultSampleRangeEnd   = 30
)

const (
	// RecommendedMinProbability and RecommendedMaxProbability bound confidence and
	// reliability targets in usual zero-failure test plans (MIL-HDBK-781A).
	RecommendedMinProbability = 0.7
	RecommendedMaxProbability = 0.99
)

type AccelerationModel int

const (
	Arrhenius AccelerationModel = iota
	Peck
	Eyring
	EyringDerating
)

// AccelerationModels lists the models in presentation order.
var AccelerationModels = []AccelerationModel{Arrhenius, Peck, Eyring, EyringDerating}

func (m AccelerationModel) String() string {
	switch m {
	case Arrhenius:
		return "Arrhenius"
	case Peck:
		return "Peck"
	case Eyring:
		return "Eyring"
	case EyringDerating:
		return "Eyring + Derating"
	default:
		return "Unknown"
	}
}

// Slug is a file-name friendly model name.
func (m AccelerationModel) Slug() string {
	switch m {
	case Arrhenius:
		return "arrhenius"
	case Peck:
		return "peck"
	case Eyring:
		return "eyring"
	case EyringDerating:
		return "eyring_derating"
	default:
		return "unknown"
	}
}

type StatisticalModel int

const (
	Exponential StatisticalModel = iota
	Weibull
)

var StatisticalModels = []StatisticalModel{Exponential, Weibull}

func (s StatisticalModel) String() string {
	switch s {
	case Exponential:
		return "exponential"
	case Weibull:
		return "weibull"
	default:
		return "unknown"
	}
}
