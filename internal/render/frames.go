package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/born-ml/fwdiff/internal/layout"
)

// Frames writes an SVG snapshot of the layout every Every iterations.
//
// Use Report as an optim.ReportFunc. Write errors stop further frames and
// are returned by Err.
type Frames struct {
	Dir     string
	Every   int // Iterations between frames (default: 10)
	Problem *layout.Problem
	Options Options

	written int
	err     error
}

// Report renders vars when iter is a multiple of Every.
func (f *Frames) Report(iter int, vars []float64) {
	every := f.Every
	if every <= 0 {
		every = 10
	}
	if f.err != nil || iter%every != 0 {
		return
	}

	name := filepath.Join(f.Dir, fmt.Sprintf("frame%04d.svg", iter/every))
	file, err := os.Create(name)
	if err != nil {
		f.err = err
		return
	}
	if err := SVG(file, layout.Points(vars), f.Problem.Connections, f.Options); err != nil {
		file.Close()
		f.err = fmt.Errorf("render %s: %w", name, err)
		return
	}
	if err := file.Close(); err != nil {
		f.err = err
		return
	}
	f.written++
}

// Written returns the number of frames written so far.
func (f *Frames) Written() int {
	return f.written
}

// Err returns the first error met while writing frames.
func (f *Frames) Err() error {
	return f.err
}
