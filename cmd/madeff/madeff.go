// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// madeff sweeps the variance inflation of a fat-tailed normal
// mixture and prints the Monte Carlo relative efficiency of the
// standard deviation versus the mean absolute deviation at each
// step, one "a efficiency" pair per line for piping into a plotter.
//
// With -pdf it instead prints the density of the configured mixture,
// one "x density" pair per line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/al0vya/go-fattails/fattail"
)

var (
	flagN       = flag.Int("n", 1000, "observations per batch")
	flagM       = flag.Int("m", 10000, "Monte Carlo batches per estimate")
	flagP       = flag.Float64("p", 0.01, "mixing probability of the inflated component")
	flagA       = flag.Float64("a", 0, "variance inflation (only used with -pdf)")
	flagAMax    = flag.Int("amax", 20, "sweep variance inflation from 0 to this value")
	flagSeed    = flag.Uint64("seed", 1, "random seed")
	flagWorkers = flag.Int("workers", runtime.GOMAXPROCS(0), "parallel workers per estimate")
	flagPDF     = flag.Bool("pdf", false, "print the mixture density instead of sweeping")
)

func main() {
	flag.Parse()

	if *flagPDF {
		printPDF(fattail.TwoNormal{A: *flagA, P: *flagP})
		return
	}

	est := fattail.Estimator{
		Mix:     fattail.TwoNormal{P: *flagP},
		N:       *flagN,
		M:       *flagM,
		Workers: *flagWorkers,
		Seed:    *flagSeed,
	}
	as := make([]float64, *flagAMax+1)
	for i := range as {
		as[i] = float64(i)
	}

	points, err := fattail.Sweep(context.Background(), est, as)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, pt := range points {
		fmt.Printf("%g %.6g\n", pt.A, pt.RelEff)
	}
}

func printPDF(d fattail.TwoNormal) {
	if err := d.Valid(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	const steps = 200
	lo, hi := d.Bounds()
	for i := 0; i <= steps; i++ {
		x := lo + (hi-lo)*float64(i)/steps
		fmt.Printf("%.6g %.6g\n", x, d.PDF(x))
	}
}
