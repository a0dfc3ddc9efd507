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

// AFResult is the acceleration factor of one model and the point test time it implies.
type AFResult struct {
	Model         AccelerationModel `csv:"-"`
	ModelName     string            `csv:"Model"`
	AF            float64           `csv:"AF"`
	TestTimeHours float64           `csv:"Required Test Time (hr)"`
	TestTimeDays  float64           `csv:"Required Test Time (days)"`
	RoundedDays   int               `csv:"Rounded Days"`
}

// SampleSizeRow is one line of a zero-failure test plan table.
type SampleSizeRow struct {
	SampleSize    int     `csv:"Sample Size"`
	TestTimeHours float64 `csv:"Test Time (hours)"`
	TestTimeDays  float64 `csv:"Test Time (days)"`
	RoundedDays   int     `csv:"Rounded Days"`
}

// SampleRange is an inclusive range of sample sizes.
type SampleRange struct {
	Start int
	End   int
}

func DefaultSampleRange() SampleRange {
	return SampleRange{Start: DefaultSampleRangeStart, End: DefaultSampleRangeEnd}
}

func (r SampleRange) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start + 1
}

func (r SampleRange) Validate() error {
	if r.Start < 1 {
		return NewDomainError("sampleRange.start", float64(r.Start), "sample size must be at least 1")
	}
	if r.End < r.Start {
		return NewDomainError("sampleRange.end", float64(r.End), "range end is below its start")
	}

	return nil
}
