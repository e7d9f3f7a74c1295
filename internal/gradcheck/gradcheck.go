// Package gradcheck verifies dual-number gradients against finite differences.
package gradcheck

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/fwdiff/internal/dual"
)

var (
	// ErrGradientMismatch is returned when an analytic partial disagrees with
	// its numerical estimate.
	ErrGradientMismatch = errors.New("gradcheck: gradient mismatch")

	// ErrWidthMismatch is returned when a loss has the wrong number of partials.
	ErrWidthMismatch = errors.New("gradcheck: loss width does not match variable count")
)

// Numerical estimates the gradient of f at xs by central differences with
// step h. xs is not modified.
func Numerical[F constraints.Float](f func([]F) F, xs []F, h F) []F {
	work := slices.Clone(xs)
	grad := make([]F, len(xs))
	for i := range work {
		tmp := work[i]
		work[i] = tmp + h
		y1 := f(work)

		work[i] = tmp - h
		y2 := f(work)

		grad[i] = (y1 - y2) / (2 * h)
		work[i] = tmp
	}
	return grad
}

// Config controls Check.
type Config struct {
	Step      float64 // Finite-difference step (default: 1e-6)
	Tolerance float64 // Allowed error, relative to max(1, |numerical|) (default: 1e-4)
}

// Check compares the partials of loss at vars with a numerical gradient.
//
// It returns nil when every partial is within tolerance, otherwise an error
// wrapping ErrGradientMismatch that names the first offending variable.
func Check(loss func([]float64) dual.Dual, vars []float64, config Config) error {
	if config.Step == 0 {
		config.Step = 1e-6
	}
	if config.Tolerance == 0 {
		config.Tolerance = 1e-4
	}

	analytic := loss(slices.Clone(vars))
	if analytic.Width() != len(vars) {
		return fmt.Errorf("%w: %d partials for %d variables", ErrWidthMismatch, analytic.Width(), len(vars))
	}

	numeric := Numerical(func(x []float64) float64 {
		return loss(x).Value()
	}, vars, config.Step)

	for i, want := range numeric {
		got := analytic.Partial(i)
		if math.IsNaN(got) != math.IsNaN(want) || math.Abs(got-want) > config.Tolerance*math.Max(1, math.Abs(want)) {
			return fmt.Errorf("%w: variable %d: analytic %g, numerical %g", ErrGradientMismatch, i, got, want)
		}
	}
	return nil
}
