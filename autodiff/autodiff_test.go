// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/fwdiff/autodiff"
	"github.com/born-ml/fwdiff/linalg"
	"github.com/born-ml/fwdiff/optim"
)

// TestPublicAPI exercises the forwarding layer end to end.
func TestPublicAPI(t *testing.T) {
	vars := []float64{3, 4}
	p := linalg.NewVector(autodiff.Select(vars, 0), autodiff.Select(vars, 1))

	r := linalg.Length(p)
	assert.InDelta(t, 5.0, r.Value(), 1e-12)
	assert.InDelta(t, 0.6, r.Partial(0), 1e-12)
	assert.InDelta(t, 0.8, r.Partial(1), 1e-12)

	s := autodiff.Sum(2, autodiff.Constant(2, 1), autodiff.Variable(2, 2, 1), autodiff.One(2), autodiff.Zero(2))
	assert.Equal(t, 4.0, s.Value())
	assert.Equal(t, []float64{0, 1}, s.Partials())
}

// TestQuadraticDescent runs the Σx² scenario through the public packages.
func TestQuadraticDescent(t *testing.T) {
	loss := optim.ObjectiveFunc(func(vars []float64) autodiff.Dual {
		acc := autodiff.Zero(len(vars))
		for i := range vars {
			x := autodiff.Select(vars, i)
			acc = acc.Add(x.Mul(x))
		}
		return acc
	})

	gd := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1, Iterations: 100})
	result := gd.Minimize(loss, []float64{1, 1})
	for _, x := range result {
		assert.InDelta(t, 0.0, x, 1e-6)
	}
	assert.Less(t, optim.Evaluate(loss, result), 1e-12)
}
