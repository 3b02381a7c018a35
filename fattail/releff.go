// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fattail

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/al0vya/go-fattails/stats"
)

// An Estimator estimates the relative efficiency of the standard
// deviation versus the mean absolute deviation under a TwoNormal
// mixture by Monte Carlo.
//
// It draws M independent batches of N observations each, computes the
// sample standard deviation and the mean absolute deviation of every
// batch, and reduces the two resulting populations of dispersion
// estimates with stats.RelVar. The reported statistic is
//
//	RelVar(std estimates) / RelVar(MAD estimates)
//
// Under a pure Gaussian (A=0 or P=0) this converges to 0.875 as M→∞,
// the classic result that the standard deviation is the more
// efficient dispersion estimator for thin tails (Fisher 1920). As A
// grows with small fixed P the ratio rises past 1, quantifying how
// quickly fat tails reverse that advantage.
type Estimator struct {
	// Mix is the mixture to sample batches from. Mix.Src is
	// ignored: the estimator derives an independent random stream
	// per batch from Seed so that results do not depend on
	// Workers.
	Mix TwoNormal

	// N is the number of observations per batch. N >= 2.
	N int

	// M is the number of batches. M >= 1, though M == 1 gives a
	// NaN result: the relative variances are variances across
	// batches, so a single batch cannot support them.
	M int

	// Workers is the number of goroutines that generate and
	// reduce batches. Values below 2 run the estimate serially.
	// The result is identical for any Workers value.
	Workers int

	// Seed fixes the random streams. Two runs with equal
	// parameters and equal Seed produce bit-identical results.
	Seed uint64
}

// A Result is one Monte Carlo relative-efficiency estimate.
type Result struct {
	// RelEff is RelVar of the standard-deviation estimates
	// divided by RelVar of the mean-absolute-deviation estimates.
	// Values below 1 mean the standard deviation was the more
	// stable estimator under the configured mixture; values above
	// 1 mean the mean absolute deviation was.
	RelEff float64

	// StdRelVar and MADRelVar are the two relative variances the
	// ratio was formed from.
	StdRelVar, MADRelVar float64
}

func (e Estimator) valid() error {
	if err := e.Mix.Valid(); err != nil {
		return err
	}
	if e.N < 2 {
		return fmt.Errorf("batch size n must be >= 2 for a sample standard deviation (got %d)", e.N)
	}
	if e.M < 1 {
		return fmt.Errorf("batch count m must be >= 1 (got %d)", e.M)
	}
	return nil
}

// batchSeed derives the seed of batch i's random stream from the
// estimator seed using a splitmix64 finalizer, so that neighboring
// batch indexes still get decorrelated streams.
func batchSeed(seed, i uint64) uint64 {
	z := seed + (i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// batches computes the dispersion estimates for batches [lo, hi),
// storing them at their batch index.
func (e Estimator) batches(ctx context.Context, lo, hi int, stds, mads []float64) error {
	mix := e.Mix
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		mix.Src = rand.NewSource(batchSeed(e.Seed, uint64(i)))
		batch := stats.Sample{Xs: mix.Sample(e.N)}
		stds[i] = batch.StdDev()
		mads[i] = batch.MeanAbsDev()
	}
	return nil
}

// Run computes one relative-efficiency estimate. It fails fast on
// out-of-range parameters and returns ctx's error if ctx is canceled
// before the estimate completes.
func (e Estimator) Run(ctx context.Context) (Result, error) {
	if err := e.valid(); err != nil {
		return Result{}, err
	}

	stds := make([]float64, e.M)
	mads := make([]float64, e.M)

	if e.Workers < 2 {
		if err := e.batches(ctx, 0, e.M, stds, mads); err != nil {
			return Result{}, err
		}
	} else {
		// Split the batch range into Workers contiguous
		// chunks. Batches own their random streams and result
		// slots, so the split has no effect on the output.
		g, ctx := errgroup.WithContext(ctx)
		workers := e.Workers
		if workers > e.M {
			workers = e.M
		}
		for w := 0; w < workers; w++ {
			lo := w * e.M / workers
			hi := (w + 1) * e.M / workers
			g.Go(func() error {
				return e.batches(ctx, lo, hi, stds, mads)
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		StdRelVar: stats.RelVar(stds),
		MADRelVar: stats.RelVar(mads),
	}
	res.RelEff = res.StdRelVar / res.MADRelVar
	return res, nil
}

// A SweepPoint is one relative-efficiency estimate at one variance
// inflation value.
type SweepPoint struct {
	A      float64
	RelEff float64
}

// Sweep runs e once per variance inflation value in as, holding every
// other parameter fixed, and collects the (a, relative efficiency)
// pairs in order. All points reuse e.Seed, so the sweep uses common
// random numbers across a values, which reduces the Monte Carlo noise
// in the shape of the resulting curve.
func Sweep(ctx context.Context, e Estimator, as []float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(as))
	for _, a := range as {
		e.Mix.A = a
		res, err := e.Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("a=%v: %w", a, err)
		}
		points = append(points, SweepPoint{A: a, RelEff: res.RelEff})
	}
	return points, nil
}
