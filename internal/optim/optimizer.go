// Package optim implements gradient-based minimisation of dual-number
// objectives.
//
// This package provides:
//   - Objective: a loss whose value carries the full gradient
//   - Optimizer interface: one update step from a loss evaluation
//   - GradientDescent: plain steepest descent, var -= lr * ∂loss/∂var
//   - Adam: Adaptive Moment Estimation
//   - Run: the iteration driver shared by all optimizers
//
// Example usage:
//
//	gd := optim.NewGradientDescent(optim.GradientDescentConfig{
//	    LR:         0.01,
//	    Iterations: 1000,
//	})
//	result := gd.Minimize(problem, initial)
//	fmt.Println(optim.Evaluate(problem, result))
package optim

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/fwdiff/internal/dual"
)

// ErrWidthMismatch is raised when a loss carries a different number of
// partials than there are variables.
var ErrWidthMismatch = errors.New("optim: loss width does not match variable count")

// Objective is a differentiable loss over a variable vector.
//
// Loss must treat vars as read-only and return a dual of width len(vars)
// whose partials are the gradient at vars.
type Objective interface {
	Loss(vars []float64) dual.Dual
}

// ObjectiveFunc adapts a plain function to Objective.
type ObjectiveFunc func(vars []float64) dual.Dual

// Loss calls f(vars).
func (f ObjectiveFunc) Loss(vars []float64) dual.Dual {
	return f(vars)
}

// ReportFunc observes the variables at the start of each iteration.
// It has no effect on the optimisation.
type ReportFunc func(iter int, vars []float64)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply one update to vars in place using the loss gradient
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step updates vars in place from a loss evaluated at vars.
	//
	// Panics with ErrWidthMismatch if loss.Width() != len(vars).
	Step(vars []float64, loss dual.Dual)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// Run drives opt for the given number of iterations starting from vars.
//
// Each iteration calls report (if non-nil) with the iteration index and the
// current variables, evaluates obj, and applies one opt.Step. The caller's
// slice is never modified; report and obj each receive their own copy.
// A non-positive iteration count returns an exact copy of vars.
//
// Run does not check for convergence or divergence: NaN and infinite
// values propagate silently, so callers should inspect the final loss.
func Run(opt Optimizer, obj Objective, vars []float64, iterations int, report ReportFunc) []float64 {
	out := slices.Clone(vars)
	for i := 0; i < iterations; i++ {
		if report != nil {
			report(i, slices.Clone(out))
		}
		loss := obj.Loss(slices.Clone(out))
		opt.Step(out, loss)
	}
	return out
}

// Evaluate returns the loss value at vars, discarding the gradient.
func Evaluate(obj Objective, vars []float64) float64 {
	return obj.Loss(slices.Clone(vars)).Value()
}

// gradient extracts the partials of loss, checking them against vars.
func gradient(vars []float64, loss dual.Dual) []float64 {
	if loss.Width() != len(vars) {
		panic(fmt.Errorf("%w: %d partials for %d variables", ErrWidthMismatch, loss.Width(), len(vars)))
	}
	return loss.Partials()
}
