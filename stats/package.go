// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides batch summary statistics for Monte Carlo dispersion
// experiments.
package stats // import "github.com/al0vya/go-fattails/stats"

import "math"

var nan = math.NaN()
