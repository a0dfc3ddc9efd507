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

// ParameterSet holds use and stress conditions together with the test plan targets.
// Temperatures are in degrees Celsius, humidities in percent.
type ParameterSet struct {
	UseTemperature    float64
	StressTemperature float64
	UseHumidity       float64
	StressHumidity    float64

	// ActivationEnergy in eV
	ActivationEnergy float64
	// PeckExponent is the humidity exponent n of the Peck model.
	PeckExponent float64
	// EyringExponent is the humidity exponent m of the Eyring model.
	EyringExponent float64

	UVDerating      float64
	ThermalDerating float64
	MechDerating    float64

	Confidence  float64
	Reliability float64
	Beta        float64

	// LifeHours is the target life to demonstrate.
	LifeHours float64
}

func DefaultParameterSet() ParameterSet {
	return ParameterSet{
		UseTemperature:    DefaultUseTemperature,
		StressTemperature: DefaultStressTemperature,
		UseHumidity:       DefaultUseHumidity,
		StressHumidity:    DefaultStressHumidity,
		ActivationEnergy:  DefaultActivationEnergy,
		PeckExponent:      DefaultPeckExponent,
		EyringExponent:    DefaultEyringExponent,
		UVDerating:        DefaultUVDerating,
		ThermalDerating:   DefaultThermalDerating,
		MechDerating:      DefaultMechDerating,
		Confidence:        DefaultConfidence,
		Reliability:       DefaultReliability,
		Beta:              DefaultBeta,
		LifeHours:         DefaultLifeHours,
	}
}

func CelsiusToKelvin(c float64) float64 {
	return c + KelvinOffset
}

func (p ParameterSet) UseKelvin() float64 {
	return CelsiusToKelvin(p.UseTemperature)
}

func (p ParameterSet) StressKelvin() float64 {
	return CelsiusToKelvin(p.StressTemperature)
}

// Validate returns the first field outside its domain.
func (p ParameterSet) Validate() error {
	if err := CheckPositive("useTemperature(K)", p.UseKelvin()); err != nil {
		return err
	}
	if err := CheckPositive("stressTemperature(K)", p.StressKelvin()); err != nil {
		return err
	}
	if err := CheckHumidity("useHumidity", p.UseHumidity); err != nil {
		return err
	}
	if err := CheckHumidity("stressHumidity", p.StressHumidity); err != nil {
		return err
	}
	if err := CheckPositive("activationEnergy", p.ActivationEnergy); err != nil {
		return err
	}

	if !IsFinite(p.PeckExponent) {
		return NewDomainError("peckExponent", p.PeckExponent, "must be finite")
	}
	if !IsFinite(p.EyringExponent) {
		return NewDomainError("eyringExponent", p.EyringExponent, "must be finite")
	}

	if err := CheckPositive("uvDerating", p.UVDerating); err != nil {
		return err
	}
	if err := CheckPositive("thermalDerating", p.ThermalDerating); err != nil {
		return err
	}
	if err := CheckPositive("mechDerating", p.MechDerating); err != nil {
		return err
	}
	if err := CheckProbability("confidence", p.Confidence); err != nil {
		return err
	}
	if err := CheckProbability("reliability", p.Reliability); err != nil {
		return err
	}
	if err := CheckBeta(p.Beta); err != nil {
		return err
	}

	return CheckPositive("lifeHours", p.LifeHours)
}

// CheckHumidity accepts relative humidity in (0, 100].
func CheckHumidity(field string, rh float64) error {
	if !(rh > 0 && rh <= 100) {
		return NewDomainError(field, rh, "relative humidity must lie in (0, 100]")
	}

	return nil
}

func CheckBeta(beta float64) error {
	if beta == 0 || !IsFinite(beta) {
		return NewDomainError("beta", beta, "Weibull shape must be finite and non-zero")
	}

	return nil
}
