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

package zerofailure

import (
	"math"

	"github.com/eth-easl/altplanner/pkg/common"
)

// TestTimeModel gives the per-unit test time needed to demonstrate the target life
// with zero failures on n units at acceleration factor af.
type TestTimeModel interface {
	Kind() common.StatisticalModel
	TestTime(n int, af float64) (float64, error)
}

// Exponential is the constant failure rate plan (MIL-HDBK-781A).
type Exponential struct {
	LifeHours   float64
	Confidence  float64
	Reliability float64
}

// Weibull is the zero-failure plan for a Weibull shape Beta.
type Weibull struct {
	LifeHours  float64
	Confidence float64
	Beta       float64
}

func (e Exponential) Kind() common.StatisticalModel { return common.Exponential }

func (e Exponential) TestTime(n int, af float64) (float64, error) {
	return ExponentialTestTime(n, af, e.LifeHours, e.Confidence, e.Reliability)
}

func (w Weibull) Kind() common.StatisticalModel { return common.Weibull }

func (w Weibull) TestTime(n int, af float64) (float64, error) {
	return WeibullTestTime(n, af, w.LifeHours, w.Confidence, w.Beta)
}

// NewTestTimeModel builds the requested variant from a parameter set.
func NewTestTimeModel(kind common.StatisticalModel, p common.ParameterSet) (TestTimeModel, error) {
	switch kind {
	case common.Exponential:
		return Exponential{LifeHours: p.LifeHours, Confidence: p.Confidence, Reliability: p.Reliability}, nil
	case common.Weibull:
		return Weibull{LifeHours: p.LifeHours, Confidence: p.Confidence, Beta: p.Beta}, nil
	default:
		return nil, common.NewDomainError("statisticalModel", float64(kind), "unknown statistical model")
	}
}

func checkCommon(n int, af, lifeHours, confidence float64) error {
	if err := common.CheckSampleSize(n); err != nil {
		return err
	}
	if err := common.CheckPositive("AF", af); err != nil {
		return err
	}
	if err := common.CheckPositive("lifeHours", lifeHours); err != nil {
		return err
	}

	return common.CheckProbability("confidence", confidence)
}

// ExponentialTestTime is (L / (n*AF)) * ln(1-CI) / ln(R).
func ExponentialTestTime(n int, af, lifeHours, confidence, reliability float64) (float64, error) {
	if err := checkCommon(n, af, lifeHours, confidence); err != nil {
		return 0, err
	}
	if err := common.CheckProbability("reliability", reliability); err != nil {
		return 0, err
	}

	base, err := lifeOverAF(lifeHours, af)
	if err != nil {
		return 0, err
	}

	t := (base / float64(n)) * (math.Log(1-confidence) / math.Log(reliability))
	if !common.IsFinite(t) || t <= 0 {
		return 0, common.NewDomainError("lifeHours", lifeHours, "test time is not positive and finite")
	}

	return t, nil
}

// lifeOverAF is L/AF, rejected when it overflows.
func lifeOverAF(lifeHours, af float64) (float64, error) {
	base := lifeHours / af
	if !common.IsFinite(base) || base <= 0 {
		return 0, common.NewDomainError("lifeHours", lifeHours, "L/AF is not positive and finite")
	}

	return base, nil
}

// WeibullTestTime is (L/AF) * (-ln(1-CI))^(1/beta) / n^(1/beta).
// At beta = 1 this does not reduce to ExponentialTestTime: reliability plays no part here.
func WeibullTestTime(n int, af, lifeHours, confidence, beta float64) (float64, error) {
	if err := checkCommon(n, af, lifeHours, confidence); err != nil {
		return 0, err
	}
	if err := common.CheckBeta(beta); err != nil {
		return 0, err
	}

	base, err := lifeOverAF(lifeHours, af)
	if err != nil {
		return 0, err
	}

	shape := 1 / beta
	term := math.Pow(-math.Log(1-confidence), shape)
	t := base * term / math.Pow(float64(n), shape)
	if !common.IsFinite(t) || t <= 0 {
		return 0, common.NewDomainError("beta", beta, "test time is not positive and finite")
	}

	return t, nil
}
