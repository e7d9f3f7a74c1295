// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides fixed-dimension vectors and matrices generic over
// their scalar type.
//
// The same code computes plain geometry over Float or differentiable
// geometry over autodiff.Dual:
//
//	p := linalg.NewVector(autodiff.Select(vars, 0), autodiff.Select(vars, 1))
//	r := linalg.Length(p) // value and gradient of |p|
package linalg

import (
	"github.com/born-ml/fwdiff/internal/linalg"
)

// Scalar is the capability set required by Vector and Matrix.
type Scalar[T any] = linalg.Scalar[T]

// Root is a Scalar with a square root.
type Root[T any] = linalg.Root[T]

// Float is a plain float64 satisfying Root.
type Float = linalg.Float

// Vector is an ordered, fixed-dimension list of scalars.
type Vector[T Scalar[T]] = linalg.Vector[T]

// Matrix is an N×M matrix stored as M columns.
type Matrix[T Scalar[T]] = linalg.Matrix[T]

// Errors raised (via panic) on dimension violations.
var (
	ErrDimensionMismatch = linalg.ErrDimensionMismatch
	ErrEmptyMatrix       = linalg.ErrEmptyMatrix
	ErrOutOfRange        = linalg.ErrOutOfRange
)

// NewVector returns a vector holding a copy of elems.
func NewVector[T Scalar[T]](elems ...T) Vector[T] {
	return linalg.NewVector(elems...)
}

// NewMatrix builds a matrix from its columns.
func NewMatrix[T Scalar[T]](cols ...Vector[T]) Matrix[T] {
	return linalg.NewMatrix(cols...)
}

// Length returns the Euclidean norm of v.
func Length[T Root[T]](v Vector[T]) T {
	return linalg.Length(v)
}

// Floats wraps xs as Floats.
func Floats(xs ...float64) []Float {
	return linalg.Floats(xs...)
}
