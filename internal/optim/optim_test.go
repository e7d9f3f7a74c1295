package optim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fwdiff/internal/dual"
	"github.com/born-ml/fwdiff/internal/optim"
)

// sumOfSquares is Σ vars[i]², minimised at the origin.
var sumOfSquares = optim.ObjectiveFunc(func(vars []float64) dual.Dual {
	acc := dual.Zero(len(vars))
	for i := range vars {
		x := dual.Select(vars, i)
		acc = acc.Add(x.Mul(x))
	}
	return acc
})

// TestGradientDescent_SimpleUpdate tests a single plain step.
func TestGradientDescent_SimpleUpdate(t *testing.T) {
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1})

	vars := []float64{2.0}
	// loss = x, so ∂loss/∂x = 1.
	gd.Step(vars, dual.Select(vars, 0))

	// Expected: x_new = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, vars[0], 1e-12)
}

// TestGradientDescent_Defaults tests zero-means-default configuration.
func TestGradientDescent_Defaults(t *testing.T) {
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{})
	assert.Equal(t, 0.01, gd.GetLR())
	assert.Equal(t, 0, gd.Iterations())
}

// TestGradientDescent_GetSetLR tests learning rate getter/setter.
func TestGradientDescent_GetSetLR(t *testing.T) {
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.01})
	assert.Equal(t, 0.01, gd.GetLR())

	gd.SetLR(0.001)
	assert.Equal(t, 0.001, gd.GetLR())
}

// TestConvergence_SimpleQuadratic minimises Σx² from (1, 1).
func TestConvergence_SimpleQuadratic(t *testing.T) {
	var losses []float64
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{
		LR:         0.1,
		Iterations: 100,
		Report: func(_ int, vars []float64) {
			losses = append(losses, optim.Evaluate(sumOfSquares, vars))
		},
	})

	result := gd.Minimize(sumOfSquares, []float64{1.0, 1.0})

	require.Len(t, result, 2)
	for i, x := range result {
		assert.InDelta(t, 0.0, x, 1e-6, "component %d", i)
	}

	losses = append(losses, optim.Evaluate(sumOfSquares, result))
	require.Len(t, losses, 101)
	for i := 1; i < len(losses); i++ {
		assert.Less(t, losses[i], losses[i-1], "loss did not decrease at iteration %d", i)
	}
}

// TestMinimize_ZeroIterations returns the input bit for bit.
func TestMinimize_ZeroIterations(t *testing.T) {
	in := []float64{1.5, math.Copysign(0, -1), math.NaN(), math.Inf(-1)}
	called := false
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{
		Report: func(int, []float64) { called = true },
	})

	out := gd.Minimize(optim.ObjectiveFunc(func([]float64) dual.Dual {
		called = true
		return dual.Zero(4)
	}), in)

	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, math.Float64bits(in[i]), math.Float64bits(out[i]), "component %d", i)
	}
	assert.False(t, called)
}

// TestMinimize_DoesNotMutateInput checks ownership of the variable vector.
func TestMinimize_DoesNotMutateInput(t *testing.T) {
	in := []float64{1, -2}
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1, Iterations: 5})

	out := gd.Minimize(sumOfSquares, in)
	assert.Equal(t, []float64{1, -2}, in)
	assert.NotEqual(t, in, out)
}

// TestRun_ReportOrder checks that report sees each iteration before its step.
func TestRun_ReportOrder(t *testing.T) {
	var iters []int
	var firstX []float64
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.25})

	optim.Run(gd, sumOfSquares, []float64{4}, 3, func(i int, vars []float64) {
		iters = append(iters, i)
		firstX = append(firstX, vars[0])
		vars[0] = 1e9 // must not leak into the optimisation
	})

	assert.Equal(t, []int{0, 1, 2}, iters)
	// x <- x - 0.25 * 2x = x/2
	assert.Equal(t, []float64{4, 2, 1}, firstX)
}

// TestRun_ObjectiveGetsCopy checks that a misbehaving loss cannot corrupt state.
func TestRun_ObjectiveGetsCopy(t *testing.T) {
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.25})
	obj := optim.ObjectiveFunc(func(vars []float64) dual.Dual {
		l := sumOfSquares.Loss(vars)
		vars[0] = 1e9
		return l
	})

	out := optim.Run(gd, obj, []float64{4}, 2, nil)
	assert.Equal(t, []float64{1}, out)
}

// TestRun_DivergenceIsSilent checks NaN/Inf propagate without panics.
func TestRun_DivergenceIsSilent(t *testing.T) {
	gd := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 1e300, Iterations: 10})

	var out []float64
	require.NotPanics(t, func() {
		out = gd.Minimize(sumOfSquares, []float64{1e10})
	})
	assert.True(t, math.IsInf(out[0], 0) || math.IsNaN(out[0]), "got %v", out[0])
}

// TestStep_WidthMismatch checks that a wrong-width loss is rejected.
func TestStep_WidthMismatch(t *testing.T) {
	for _, opt := range []optim.Optimizer{
		optim.NewGradientDescent(optim.GradientDescentConfig{}),
		optim.NewAdam(optim.AdamConfig{}),
	} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, optim.ErrWidthMismatch), "got %v", err)
			}()
			opt.Step([]float64{1, 2}, dual.Zero(3))
		}()
	}
}

// TestAdam_SimpleUpdate tests Adam optimizer update.
func TestAdam_SimpleUpdate(t *testing.T) {
	adam := optim.NewAdam(optim.AdamConfig{
		LR:    0.001,
		Betas: [2]float64{0.9, 0.999},
		Eps:   1e-8,
	})

	vars := []float64{1.0}
	adam.Step(vars, dual.Select(vars, 0))

	// After first step (with bias correction):
	// m_hat = 0.1 / (1 - 0.9) = 1.0
	// v_hat = 0.001 / (1 - 0.999) = 1.0
	// x_new = 1.0 - 0.001 * 1.0 / (1.0 + 1e-8) ≈ 0.999
	assert.InDelta(t, 0.999, vars[0], 1e-9)
}

// TestAdam_BiasCorrection tests timestep bookkeeping.
func TestAdam_BiasCorrection(t *testing.T) {
	adam := optim.NewAdam(optim.AdamConfig{LR: 0.01})
	assert.Equal(t, 0, adam.GetTimestep())

	vars := []float64{1.0}
	for i := 1; i <= 3; i++ {
		adam.Step(vars, dual.Select(vars, 0))
		assert.Equal(t, i, adam.GetTimestep())
	}
	assert.Less(t, vars[0], 1.0)

	adam.Reset()
	assert.Equal(t, 0, adam.GetTimestep())
}

// TestAdam_Defaults tests zero-means-default configuration.
func TestAdam_Defaults(t *testing.T) {
	adam := optim.NewAdam(optim.AdamConfig{})
	assert.Equal(t, 0.001, adam.GetLR())

	adam.SetLR(0.5)
	assert.Equal(t, 0.5, adam.GetLR())
}

// TestAdam_Convergence minimises Σx² through the shared driver.
func TestAdam_Convergence(t *testing.T) {
	adam := optim.NewAdam(optim.AdamConfig{LR: 0.05})
	result := optim.Run(adam, sumOfSquares, []float64{1.0, -1.0}, 500, nil)

	for i, x := range result {
		assert.InDelta(t, 0.0, x, 1e-2, "component %d", i)
	}
	assert.Less(t, optim.Evaluate(sumOfSquares, result), 1e-3)
}
