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

package analysis

import (
	"github.com/eth-easl/altplanner/pkg/acceleration"
	"github.com/eth-easl/altplanner/pkg/common"
	"github.com/eth-easl/altplanner/pkg/zerofailure"
	log "github.com/sirupsen/logrus"
)

// ModelTables holds the sample-size tables of one acceleration model.
type ModelTables struct {
	Model common.AccelerationModel
	AF    float64
	zerofailure.Tables
}

// Result is everything the presentation layer needs to render an analysis.
type Result struct {
	Parameters  common.ParameterSet
	SampleRange common.SampleRange

	Summary []common.AFResult
	Tables  []ModelTables
}

// Table looks up the rows of one model and statistical plan.
func (r *Result) Table(model common.AccelerationModel, kind common.StatisticalModel) ([]common.SampleSizeRow, bool) {
	for _, t := range r.Tables {
		if t.Model != model {
			continue
		}

		switch kind {
		case common.Exponential:
			return t.Exponential, true
		case common.Weibull:
			return t.Weibull, true
		}
	}

	return nil, false
}

func RunAnalysis(p common.ParameterSet) (*Result, error) {
	return RunAnalysisWithRange(p, common.DefaultSampleRange())
}

// RunAnalysisWithRange computes the four AF results and the eight sample-size tables.
// Either the whole result is returned or the first domain error.
func RunAnalysisWithRange(p common.ParameterSet, sampleRange common.SampleRange) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := sampleRange.Validate(); err != nil {
		return nil, err
	}

	summary, err := acceleration.ComputeAccelerationFactors(p)
	if err != nil {
		return nil, err
	}

	tables := make([]ModelTables, 0, len(summary))
	for _, s := range summary {
		t, err := zerofailure.BuildSampleSizeTables(s.AF, p.LifeHours, p.Confidence, p.Reliability, p.Beta, sampleRange)
		if err != nil {
			return nil, err
		}

		tables = append(tables, ModelTables{Model: s.Model, AF: s.AF, Tables: t})
	}

	log.Debugf("Analysis done: %d models, sample sizes %d..%d", len(summary), sampleRange.Start, sampleRange.End)

	return &Result{
		Parameters:  p,
		SampleRange: sampleRange,
		Summary:     summary,
		Tables:      tables,
	}, nil
}
