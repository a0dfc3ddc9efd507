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
	"fmt"
	"math"
)

// DomainError reports an input outside the domain of a formula.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func NewDomainError(field string, value float64, reason string) *DomainError {
	return &DomainError{Field: field, Value: value, Reason: reason}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %g: %s", e.Field, e.Value, e.Reason)
}

func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CheckProbability accepts p in the open interval (0, 1).
func CheckProbability(field string, p float64) error {
	if !(p > 0 && p < 1) {
		return NewDomainError(field, p, "must lie strictly between 0 and 1")
	}

	return nil
}

// CheckPositive accepts finite x > 0.
func CheckPositive(field string, x float64) error {
	if !IsFinite(x) || x <= 0 {
		return NewDomainError(field, x, "must be positive and finite")
	}

	return nil
}

// CeilDays rounds days up to a whole number of days that fits in an int.
func CeilDays(days float64) (int, error) {
	c := math.Ceil(days)
	if !IsFinite(c) || c < 0 || c >= math.MaxInt {
		return 0, NewDomainError("testTimeDays", days, "rounded days do not fit in an integer")
	}

	return int(c), nil
}

func CheckSampleSize(n int) error {
	if n < 1 {
		return NewDomainError("sampleSize", float64(n), "sample size must be at least 1")
	}

	return nil
}
