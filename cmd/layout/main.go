// Package main lays out a small graph by gradient descent and renders it as SVG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/born-ml/fwdiff/internal/gradcheck"
	"github.com/born-ml/fwdiff/internal/layout"
	"github.com/born-ml/fwdiff/internal/optim"
	"github.com/born-ml/fwdiff/internal/parallel"
	"github.com/born-ml/fwdiff/internal/render"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("fwdiff layout %s\n", version)
		return
	}

	configPath := flag.String("config", "", "YAML layout description (default: built-in 10-point demo)")
	connections := flag.String("connections", "", "Override connections, e.g. \"0-1,1-2\"")
	iterations := flag.Int("iterations", 1000, "Optimisation steps")
	lr := flag.Float64("lr", 0.01, "Learning rate")
	method := flag.String("optimizer", "gd", "Optimizer: gd or adam")
	restarts := flag.Int("restarts", 1, "Independent starts; the lowest loss wins")
	seed := flag.Int64("seed", 1, "Seed for the point orderings of extra starts")
	out := flag.String("out", "image.svg", "Output SVG file")
	framesDir := flag.String("frames", "", "Directory for per-iteration SVG frames (first start only)")
	every := flag.Int("every", 10, "Iterations between frames")
	check := flag.Bool("check", false, "Verify the loss gradient numerically before optimising")
	flag.Parse()

	problem, err := loadProblem(*configPath, *connections)
	if err != nil {
		log.Fatalf("Failed to load layout: %v", err)
	}

	newOptimizer, err := optimizerFactory(*method, *lr)
	if err != nil {
		log.Fatalf("Invalid optimizer: %v", err)
	}

	runID := uuid.New()
	fmt.Printf("Layout run %s\n", runID)
	fmt.Printf("   Points: %d, Connections: %d, Weight: %g\n", problem.Points, len(problem.Connections), problem.ConnectionWeight)
	fmt.Printf("   Optimizer: %s (lr=%g), Iterations: %d, Restarts: %d\n", *method, *lr, *iterations, *restarts)

	if *check {
		if err := gradcheck.Check(problem.Loss, layout.Circle(problem.Points), gradcheck.Config{}); err != nil {
			log.Fatalf("Gradient check failed: %v", err)
		}
		fmt.Println("   Gradient check passed")
	}

	cfg := layout.SolveConfig{
		Restarts:     *restarts,
		Iterations:   *iterations,
		Seed:         *seed,
		NewOptimizer: newOptimizer,
		Parallel:     parallel.DefaultConfig(),
	}

	var frames *render.Frames
	if *framesDir != "" {
		if err := os.MkdirAll(*framesDir, 0o755); err != nil {
			log.Fatalf("Failed to create frames directory: %v", err)
		}
		frames = &render.Frames{
			Dir:     *framesDir,
			Every:   *every,
			Problem: problem,
			Options: render.Options{Title: runID.String()},
		}
		cfg.Report = frames.Report
	}

	fmt.Printf("   Initial loss: %g\n", problem.Energy(layout.Circle(problem.Points)))
	best, all := problem.Solve(cfg)
	for _, r := range all {
		fmt.Printf("   Start %d: loss %g\n", r.Start, r.Loss)
	}
	fmt.Println(best.Loss)

	if frames != nil {
		if err := frames.Err(); err != nil {
			log.Fatalf("Failed to write frames: %v", err)
		}
		fmt.Printf("   Wrote %d frames to %s\n", frames.Written(), *framesDir)
	}

	if err := writeSVG(*out, problem, best.Vars, runID.String()); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	fmt.Printf("   Wrote %s (start %d)\n", *out, best.Start)
}

func loadProblem(path, connections string) (*layout.Problem, error) {
	problem := layout.DefaultProblem()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if problem, err = layout.Load(f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if connections != "" {
		conns, err := layout.ParseConnections(connections)
		if err != nil {
			return nil, err
		}
		problem.Connections = conns
		if err := problem.Validate(); err != nil {
			return nil, err
		}
	}
	return problem, nil
}

func optimizerFactory(method string, lr float64) (func() optim.Optimizer, error) {
	switch method {
	case "gd":
		return func() optim.Optimizer {
			return optim.NewGradientDescent(optim.GradientDescentConfig{LR: lr})
		}, nil
	case "adam":
		return func() optim.Optimizer {
			return optim.NewAdam(optim.AdamConfig{LR: lr})
		}, nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q (want gd or adam)", method)
	}
}

func writeSVG(path string, problem *layout.Problem, vars []float64, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.SVG(f, layout.Points(vars), problem.Connections, render.Options{Title: title}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
