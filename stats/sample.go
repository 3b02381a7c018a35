// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Sample is one batch of observations.
//
// All reductions follow the package convention of returning NaN for
// samples too small to support the statistic, rather than returning
// an error. Callers that accept sample sizes from outside should
// validate them before reducing.
type Sample struct {
	Xs []float64
}

// Weight returns the number of observations in the sample.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the sample variance with the n−1 (Bessel
// corrected) denominator, or NaN if the sample has fewer than two
// observations.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the sample standard deviation, the square root of
// the n−1 variance. This is the estimator convention used throughout
// this module; in particular a single observation has StdDev NaN,
// not 0.
func (s Sample) StdDev() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.StdDev(s.Xs, nil)
}

// MeanAbsDev returns the mean absolute deviation of the sample about
// its mean,
//
//	MAD = mean(|x_i − mean(x)|)
//
// or NaN if the sample is empty. Note that this is the mean absolute
// deviation, not the median absolute deviation that shares its
// acronym.
func (s Sample) MeanAbsDev() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	mean := stat.Mean(s.Xs, nil)
	var sum float64
	for _, x := range s.Xs {
		sum += math.Abs(x - mean)
	}
	return sum / float64(len(s.Xs))
}

// RelVar returns the relative variance of xs,
//
//	variance(xs) / mean(xs)²
//
// also known as the squared coefficient of variation. It measures how
// noisy an estimator is relative to its own magnitude, so comparing
// the RelVar of two estimator populations compares their statistical
// efficiency.
//
// RelVar is non-negative whenever it is finite. Following IEEE
// arithmetic it is +Inf when the mean is zero but the variance is
// not, and NaN when both are zero or when xs has fewer than two
// elements.
func RelVar(xs []float64) float64 {
	if len(xs) < 2 {
		return nan
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return (std * std) / (mean * mean)
}
