package layout

import (
	"math"
	"math/rand"

	"github.com/born-ml/fwdiff/internal/optim"
	"github.com/born-ml/fwdiff/internal/parallel"
)

// SolveConfig controls Solve.
type SolveConfig struct {
	Restarts   int   // Independent starts (default: 1)
	Iterations int   // Steps per start
	Seed       int64 // Seeds the point orderings of starts after the first

	// NewOptimizer builds a fresh optimizer for every start
	// (default: GradientDescent with LR 0.01).
	NewOptimizer func() optim.Optimizer

	// Report observes the first start only.
	Report optim.ReportFunc

	Parallel parallel.Config
}

// Result is the outcome of one start.
type Result struct {
	Start int
	Vars  []float64
	Loss  float64
}

// Solve optimises p from Restarts initial placements and returns the start
// with the lowest final loss.
//
// Start 0 uses Circle; start s > 0 places the points on the circle in an
// order drawn from Seed+s. Each start owns its variables and optimizer, so
// starts run concurrently under cfg.Parallel. A NaN loss ranks last.
func (p *Problem) Solve(cfg SolveConfig) (Result, []Result) {
	if cfg.Restarts <= 0 {
		cfg.Restarts = 1
	}
	if cfg.NewOptimizer == nil {
		cfg.NewOptimizer = func() optim.Optimizer {
			return optim.NewGradientDescent(optim.GradientDescentConfig{})
		}
	}

	results := parallel.Map(cfg.Restarts, func(s int) Result {
		var perm []int
		if s > 0 {
			perm = rand.New(rand.NewSource(cfg.Seed + int64(s))).Perm(p.Points)
		}
		var report optim.ReportFunc
		if s == 0 {
			report = cfg.Report
		}

		vars := optim.Run(cfg.NewOptimizer(), p, Placement(p.Points, perm), cfg.Iterations, report)
		return Result{Start: s, Vars: vars, Loss: p.Energy(vars)}
	}, cfg.Parallel)

	best := results[0]
	for _, r := range results[1:] {
		if better(r.Loss, best.Loss) {
			best = r
		}
	}
	return best, results
}

func better(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	return a < b
}
