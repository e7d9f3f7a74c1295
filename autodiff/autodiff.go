// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides forward-mode automatic differentiation.
//
// A Dual carries a value together with its partial derivatives with respect
// to every input variable. Arithmetic on Duals propagates the gradient
// exactly, so a loss built from Duals yields its full gradient in one pass.
//
// Example:
//
//	import "github.com/born-ml/fwdiff/autodiff"
//
//	func main() {
//	    vars := []float64{3, 4}
//	    x := autodiff.Select(vars, 0)
//	    y := autodiff.Select(vars, 1)
//
//	    r := x.Mul(x).Add(y.Mul(y)).Sqrt()
//	    fmt.Println(r.Value(), r.Partials()) // 5 [0.6 0.8]
//	}
package autodiff

import (
	"github.com/born-ml/fwdiff/internal/dual"
)

// Dual is a value paired with its gradient.
type Dual = dual.Dual

// Errors raised (via panic) on precondition violations.
var (
	ErrIndexOutOfRange = dual.ErrIndexOutOfRange
	ErrWidthMismatch   = dual.ErrWidthMismatch
)

// Constant returns v with n zero partials.
func Constant(n int, v float64) Dual {
	return dual.Constant(n, v)
}

// Variable returns v as independent variable i of n.
func Variable(n int, v float64, i int) Dual {
	return dual.Variable(n, v, i)
}

// Select returns vars[i] as variable i of len(vars).
//
// Example:
//
//	x := autodiff.Select(vars, 0)
func Select(vars []float64, i int) Dual {
	return dual.Select(vars, i)
}

// Zero returns the additive identity of width n.
func Zero(n int) Dual {
	return dual.Zero(n)
}

// One returns the multiplicative identity of width n.
func One(n int) Dual {
	return dual.One(n)
}

// Sum adds xs, starting from Zero(n).
func Sum(n int, xs ...Dual) Dual {
	return dual.Sum(n, xs...)
}
