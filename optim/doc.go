// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based minimisation of dual-number losses.
//
// # Overview
//
// This package contains:
//   - GradientDescent: plain steepest descent, var -= lr * partial
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//   - Run: the iteration driver shared by all optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/fwdiff/autodiff"
//	    "github.com/born-ml/fwdiff/optim"
//	)
//
//	func main() {
//	    loss := optim.ObjectiveFunc(func(vars []float64) autodiff.Dual {
//	        acc := autodiff.Zero(len(vars))
//	        for i := range vars {
//	            x := autodiff.Select(vars, i)
//	            acc = acc.Add(x.Mul(x))
//	        }
//	        return acc
//	    })
//
//	    gd := optim.NewGradientDescent(optim.GradientDescentConfig{
//	        LR:         0.1,
//	        Iterations: 100,
//	    })
//	    result := gd.Minimize(loss, []float64{1, 1})
//	    fmt.Println(result, optim.Evaluate(loss, result))
//	}
//
// # Progress Reporting
//
// A ReportFunc sees the iteration index and a copy of the variables before
// each step:
//
//	gd := optim.NewGradientDescent(optim.GradientDescentConfig{
//	    Iterations: 1000,
//	    Report: func(i int, vars []float64) {
//	        if i%100 == 0 {
//	            fmt.Println(i, optim.Evaluate(loss, vars))
//	        }
//	    },
//	})
//
// # Other Optimizers
//
// Any Optimizer can be driven by Run:
//
//	adam := optim.NewAdam(optim.AdamConfig{LR: 0.05})
//	result := optim.Run(adam, loss, initial, 500, nil)
//
// The driver never checks for convergence: NaN or infinite values propagate
// silently, so inspect the final loss.
package optim
