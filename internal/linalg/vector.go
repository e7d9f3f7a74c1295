package linalg

import (
	"fmt"
	"strings"
)

// Vector is an ordered, fixed-dimension list of scalars.
//
// The dimension is set at construction. Vectors are values: operations
// return new vectors and never modify their operands.
type Vector[T Scalar[T]] struct {
	elems []T
}

// NewVector returns a vector holding a copy of elems.
func NewVector[T Scalar[T]](elems ...T) Vector[T] {
	v := Vector[T]{elems: make([]T, len(elems))}
	copy(v.elems, elems)
	return v
}

// Dim returns the number of components.
func (v Vector[T]) Dim() int {
	return len(v.elems)
}

// At returns component i.
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.elems) {
		panic(fmt.Errorf("%w: component %d of %d", ErrOutOfRange, i, len(v.elems)))
	}
	return v.elems[i]
}

// Elems returns a copy of the components.
func (v Vector[T]) Elems() []T {
	out := make([]T, len(v.elems))
	copy(out, v.elems)
	return out
}

// Add returns v + o componentwise.
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	checkDims(v.Dim(), o.Dim())
	out := Vector[T]{elems: make([]T, len(v.elems))}
	for i := range v.elems {
		out.elems[i] = v.elems[i].Add(o.elems[i])
	}
	return out
}

// Sub returns v - o componentwise.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	checkDims(v.Dim(), o.Dim())
	out := Vector[T]{elems: make([]T, len(v.elems))}
	for i := range v.elems {
		out.elems[i] = v.elems[i].Sub(o.elems[i])
	}
	return out
}

// Scale multiplies every component by s.
func (v Vector[T]) Scale(s T) Vector[T] {
	out := Vector[T]{elems: make([]T, len(v.elems))}
	for i := range v.elems {
		out.elems[i] = v.elems[i].Mul(s)
	}
	return out
}

// Dot returns the sum of v[i]*o[i]. The dot product of two empty vectors
// is the zero value of T.
func (v Vector[T]) Dot(o Vector[T]) T {
	checkDims(v.Dim(), o.Dim())
	var acc T
	for i := range v.elems {
		p := v.elems[i].Mul(o.elems[i])
		if i == 0 {
			acc = p
			continue
		}
		acc = acc.Add(p)
	}
	return acc
}

// LengthSquare returns v·v.
func (v Vector[T]) LengthSquare() T {
	return v.Dot(v)
}

// String formats v as "(a, b, ...)".
func (v Vector[T]) String() string {
	parts := make([]string, len(v.elems))
	for i, e := range v.elems {
		parts[i] = fmt.Sprint(e)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Length returns the Euclidean norm of v.
func Length[T Root[T]](v Vector[T]) T {
	return v.LengthSquare().Sqrt()
}

func checkDims(a, b int) {
	if a != b {
		panic(fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, a, b))
	}
}
