// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/fwdiff/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Objective is a differentiable loss over a variable vector.
type Objective = optim.Objective

// ObjectiveFunc adapts a function to Objective.
type ObjectiveFunc = optim.ObjectiveFunc

// ReportFunc observes the variables at the start of each iteration.
type ReportFunc = optim.ReportFunc

// ErrWidthMismatch is raised (via panic) when a loss has the wrong width.
var ErrWidthMismatch = optim.ErrWidthMismatch

// Gradient descent

// GradientDescent represents the plain steepest-descent optimizer.
type GradientDescent = optim.GradientDescent

// GradientDescentConfig contains configuration for GradientDescent.
type GradientDescentConfig = optim.GradientDescentConfig

// NewGradientDescent creates a new GradientDescent optimizer.
//
// Example:
//
//	gd := optim.NewGradientDescent(optim.GradientDescentConfig{
//	    LR:         0.01,
//	    Iterations: 1000,
//	})
//	result := gd.Minimize(problem, initial)
func NewGradientDescent(config GradientDescentConfig) *GradientDescent {
	return optim.NewGradientDescent(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	adam := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.05,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Run drives opt for the given number of iterations starting from vars.
func Run(opt Optimizer, obj Objective, vars []float64, iterations int, report ReportFunc) []float64 {
	return optim.Run(opt, obj, vars, iterations, report)
}

// Evaluate returns the loss value at vars.
func Evaluate(obj Objective, vars []float64) float64 {
	return optim.Evaluate(obj, vars)
}
