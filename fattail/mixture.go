// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fattail numerically explores how dispersion estimators behave as
// distribution tails fatten, following the experiments in Taleb,
// "Statistical Consequences of Fat Tails" (2020). Its central object
// is a two-component normal scale mixture whose tail weight is
// controlled by a variance inflation parameter, and a Monte Carlo
// estimator of the relative efficiency of the standard deviation
// versus the mean absolute deviation under that mixture.
package fattail // import "github.com/al0vya/go-fattails/fattail"

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// TwoNormal is a two-component scale mixture of centered normal
// distributions. A draw comes from N(0, 1) with probability 1−P and
// from N(0, √(1+A)) with probability P.
//
// For A=0 or P=0 the mixture degenerates to a standard normal. As A
// grows with small fixed P, the occasional inflated draw fattens the
// tails while leaving the bulk of the distribution untouched, which
// is what makes this a useful minimal model of tail risk.
type TwoNormal struct {
	// A is the variance inflation of the contaminated component.
	// A >= 0.
	A float64

	// P is the probability that a draw comes from the
	// contaminated component. 0 <= P <= 1.
	P float64

	// Src is the source of randomness for Rand and Sample. If Src
	// is nil, the global random source is used.
	Src rand.Source
}

// Valid reports whether the mixture parameters are in range. The
// sampling and density methods do not themselves guard against
// out-of-range parameters; callers accepting parameters from outside
// should check Valid first.
func (d TwoNormal) Valid() error {
	if math.IsNaN(d.A) || d.A < 0 {
		return fmt.Errorf("variance inflation a must be >= 0 (got %v)", d.A)
	}
	if math.IsNaN(d.P) || d.P < 0 || d.P > 1 {
		return fmt.Errorf("mixing probability p must be in [0, 1] (got %v)", d.P)
	}
	return nil
}

// sigma2 returns the standard deviation of the contaminated
// component.
func (d TwoNormal) sigma2() float64 {
	return math.Sqrt(1 + d.A)
}

// Rand returns one draw from the mixture.
func (d TwoNormal) Rand() float64 {
	ind := distuv.Bernoulli{P: d.P, Src: d.Src}
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: d.Src}
	if ind.Rand() == 1 {
		norm.Sigma = d.sigma2()
	}
	return norm.Rand()
}

// Sample returns n independent draws from the mixture.
func (d TwoNormal) Sample(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Rand()
	}
	return xs
}

// PDF returns the probability density of the mixture at x, the
// P-weighted sum of the two component densities.
func (d TwoNormal) PDF(x float64) float64 {
	n1 := distuv.Normal{Mu: 0, Sigma: 1}
	n2 := distuv.Normal{Mu: 0, Sigma: d.sigma2()}
	return (1-d.P)*n1.Prob(x) + d.P*n2.Prob(x)
}

// CDF returns the cumulative distribution of the mixture at x.
func (d TwoNormal) CDF(x float64) float64 {
	n1 := distuv.Normal{Mu: 0, Sigma: 1}
	n2 := distuv.Normal{Mu: 0, Sigma: d.sigma2()}
	return (1-d.P)*n1.CDF(x) + d.P*n2.CDF(x)
}

// Bounds returns bounds outside of which the mixture has negligible
// weight.
func (d TwoNormal) Bounds() (float64, float64) {
	w := 4 * d.sigma2()
	return -w, w
}

// Mean returns the mean of the mixture, which is 0 for any valid
// parameters.
func (d TwoNormal) Mean() float64 {
	return 0
}

// Variance returns the variance of the mixture,
//
//	(1−P)·1 + P·(1+A)
//
// since both components are centered.
func (d TwoNormal) Variance() float64 {
	return (1-d.P) + d.P*(1+d.A)
}

// StdDev returns the standard deviation of the mixture.
func (d TwoNormal) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// MeanAbsDev returns the population mean absolute deviation of the
// mixture about its mean. A centered normal with standard deviation σ
// has E|X| = σ·√(2/π), so for the mixture
//
//	MAD = √(2/π)·((1−P) + P·√(1+A))
func (d TwoNormal) MeanAbsDev() float64 {
	return math.Sqrt(2/math.Pi) * ((1 - d.P) + d.P*d.sigma2())
}
