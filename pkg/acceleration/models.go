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

package acceleration

import (
	"math"

	"github.com/eth-easl/altplanner/pkg/common"
	log "github.com/sirupsen/logrus"
)

// thermalTerm is exp((Ea/k) * (1/Tu - 1/Ts)) with temperatures in Kelvin.
func thermalTerm(p common.ParameterSet) (float64, error) {
	useK, stressK := p.UseKelvin(), p.StressKelvin()
	if err := common.CheckPositive("useTemperature(K)", useK); err != nil {
		return 0, err
	}
	if err := common.CheckPositive("stressTemperature(K)", stressK); err != nil {
		return 0, err
	}

	return math.Exp((p.ActivationEnergy / common.BoltzmannConstant) * (1/useK - 1/stressK)), nil
}

func checkHumidities(p common.ParameterSet) error {
	if err := common.CheckHumidity("useHumidity", p.UseHumidity); err != nil {
		return err
	}

	return common.CheckHumidity("stressHumidity", p.StressHumidity)
}

func Arrhenius(p common.ParameterSet) (float64, error) {
	e, err := thermalTerm(p)
	if err != nil {
		return 0, err
	}

	return checkAF(common.Arrhenius, e)
}

// Peck is (RHu/RHs)^(-n) times the Arrhenius term.
func Peck(p common.ParameterSet) (float64, error) {
	if err := checkHumidities(p); err != nil {
		return 0, err
	}
	e, err := thermalTerm(p)
	if err != nil {
		return 0, err
	}

	return checkAF(common.Peck, math.Pow(p.UseHumidity/p.StressHumidity, -p.PeckExponent)*e)
}

// Eyring is (RHs/RHu)^m times the Arrhenius term.
func Eyring(p common.ParameterSet) (float64, error) {
	if err := checkHumidities(p); err != nil {
		return 0, err
	}
	e, err := thermalTerm(p)
	if err != nil {
		return 0, err
	}

	return checkAF(common.Eyring, math.Pow(p.StressHumidity/p.UseHumidity, p.EyringExponent)*e)
}

// EyringDerated applies the UV, thermal cycling and mechanical derating factors to the Eyring AF.
func EyringDerated(p common.ParameterSet) (float64, error) {
	af, err := Eyring(p)
	if err != nil {
		return 0, err
	}

	return checkAF(common.EyringDerating, af*p.UVDerating*p.ThermalDerating*p.MechDerating)
}

func checkAF(model common.AccelerationModel, af float64) (float64, error) {
	if !common.IsFinite(af) || af <= 0 {
		return 0, common.NewDomainError("AF("+model.String()+")", af, "acceleration factor must be positive and finite")
	}

	return af, nil
}

// AccelerationFactor evaluates a single model.
func AccelerationFactor(model common.AccelerationModel, p common.ParameterSet) (float64, error) {
	switch model {
	case common.Arrhenius:
		return Arrhenius(p)
	case common.Peck:
		return Peck(p)
	case common.Eyring:
		return Eyring(p)
	case common.EyringDerating:
		return EyringDerated(p)
	default:
		return 0, common.NewDomainError("model", float64(model), "unknown acceleration model")
	}
}

// TestTime is the point test time L/AF in hours.
func TestTime(lifeHours, af float64) (float64, error) {
	if err := common.CheckPositive("lifeHours", lifeHours); err != nil {
		return 0, err
	}
	if err := common.CheckPositive("AF", af); err != nil {
		return 0, err
	}

	hours := lifeHours / af
	if !common.IsFinite(hours) || hours <= 0 {
		return 0, common.NewDomainError("lifeHours", lifeHours, "test time L/AF is not positive and finite")
	}

	return hours, nil
}

// ComputeAccelerationFactors returns one result per model, in common.AccelerationModels order.
func ComputeAccelerationFactors(p common.ParameterSet) ([]common.AFResult, error) {
	results := make([]common.AFResult, 0, len(common.AccelerationModels))

	for _, model := range common.AccelerationModels {
		af, err := AccelerationFactor(model, p)
		if err != nil {
			return nil, err
		}

		hours, err := TestTime(p.LifeHours, af)
		if err != nil {
			return nil, err
		}

		days := hours / common.HoursPerDay
		rounded, err := common.CeilDays(days)
		if err != nil {
			return nil, err
		}

		results = append(results, common.AFResult{
			Model:         model,
			ModelName:     model.String(),
			AF:            af,
			TestTimeHours: hours,
			TestTimeDays:  days,
			RoundedDays:   rounded,
		})

		log.Debugf("%s: AF = %.4f, test time = %.2f h", model, af, hours)
	}

	return results, nil
}
