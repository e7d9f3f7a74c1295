package optim

import "github.com/born-ml/fwdiff/internal/dual"

// GradientDescent implements plain steepest descent.
//
// Update rule:
//
//	var[i] = var[i] - lr * ∂loss/∂var[i]
//
// There is no momentum, no adaptive rate and no line search.
//
// Example:
//
//	gd := optim.NewGradientDescent(optim.GradientDescentConfig{
//	    LR:         0.1,
//	    Iterations: 100,
//	})
//	result := gd.Minimize(objective, []float64{1, 1})
type GradientDescent struct {
	lr         float64
	iterations int
	report     ReportFunc
}

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig struct {
	LR         float64    // Learning rate (default: 0.01)
	Iterations int        // Number of steps taken by Minimize (no default)
	Report     ReportFunc // Optional per-iteration observer
}

// NewGradientDescent creates a new GradientDescent optimizer.
func NewGradientDescent(config GradientDescentConfig) *GradientDescent {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &GradientDescent{
		lr:         config.LR,
		iterations: config.Iterations,
		report:     config.Report,
	}
}

// Step performs var -= lr * partial for every variable.
func (g *GradientDescent) Step(vars []float64, loss dual.Dual) {
	grad := gradient(vars, loss)
	for i, d := range grad {
		vars[i] -= g.lr * d
	}
}

// Minimize runs the configured number of steps from vars and returns the
// final variables. vars itself is left untouched.
func (g *GradientDescent) Minimize(obj Objective, vars []float64) []float64 {
	return Run(g, obj, vars, g.iterations, g.report)
}

// GetLR returns the current learning rate.
func (g *GradientDescent) GetLR() float64 {
	return g.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling between Step calls.
func (g *GradientDescent) SetLR(lr float64) {
	g.lr = lr
}

// Iterations returns the step count used by Minimize.
func (g *GradientDescent) Iterations() int {
	return g.iterations
}
