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
	"github.com/eth-easl/altplanner/pkg/common"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tables holds both statistical plans for one acceleration factor.
type Tables struct {
	Exponential []common.SampleSizeRow
	Weibull     []common.SampleSizeRow
}

// NewSampleSizeRow rounds half to even, like the tables of the original calculator.
func NewSampleSizeRow(n int, hours float64) (common.SampleSizeRow, error) {
	days := hours / common.HoursPerDay
	rounded, err := common.CeilDays(days)
	if err != nil {
		return common.SampleSizeRow{}, err
	}

	return common.SampleSizeRow{
		SampleSize:    n,
		TestTimeHours: scalar.RoundEven(hours, common.TableDecimalPlaces),
		TestTimeDays:  scalar.RoundEven(days, common.TableDecimalPlaces),
		RoundedDays:   rounded,
	}, nil
}

// BuildSampleSizeTable evaluates model for every sample size in sampleRange, ascending.
func BuildSampleSizeTable(model TestTimeModel, af float64, sampleRange common.SampleRange) ([]common.SampleSizeRow, error) {
	if err := sampleRange.Validate(); err != nil {
		return nil, err
	}

	rows := make([]common.SampleSizeRow, 0, sampleRange.Len())
	for n := sampleRange.Start; n <= sampleRange.End; n++ {
		hours, err := model.TestTime(n, af)
		if err != nil {
			return nil, err
		}

		row, err := NewSampleSizeRow(n, hours)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	log.Tracef("Built %s table with %d rows for AF %.4f", model.Kind(), len(rows), af)

	return rows, nil
}

// BuildSampleSizeTables produces the exponential and Weibull tables for one AF.
func BuildSampleSizeTables(af, lifeHours, confidence, reliability, beta float64, sampleRange common.SampleRange) (Tables, error) {
	exponential, err := BuildSampleSizeTable(Exponential{
		LifeHours:   lifeHours,
		Confidence:  confidence,
		Reliability: reliability,
	}, af, sampleRange)
	if err != nil {
		return Tables{}, err
	}

	weibull, err := BuildSampleSizeTable(Weibull{
		LifeHours:  lifeHours,
		Confidence: confidence,
		Beta:       beta,
	}, af, sampleRange)
	if err != nil {
		return Tables{}, err
	}

	return Tables{Exponential: exponential, Weibull: weibull}, nil
}
