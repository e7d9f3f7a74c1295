// Package linalg provides fixed-dimension vectors and matrices that are
// generic over their scalar type.
//
// Any type implementing Scalar can be used, so the same geometric code runs
// over plain numbers (Float) or over dual numbers carrying gradients.
//
// Example:
//
//	u := linalg.NewVector[linalg.Float](3, 4)
//	l := linalg.Length(u) // 5
package linalg

import (
	"math"
	"strconv"

	"github.com/born-ml/fwdiff/internal/dual"
)

// Scalar is the capability set required by Vector and Matrix arithmetic.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
}

// Root is a Scalar that also supports a square root.
type Root[T any] interface {
	Scalar[T]
	Sqrt() T
}

// Float is a plain float64 satisfying Root.
type Float float64

// Add returns f + o.
func (f Float) Add(o Float) Float { return f + o }

// Sub returns f - o.
func (f Float) Sub(o Float) Float { return f - o }

// Mul returns f * o.
func (f Float) Mul(o Float) Float { return f * o }

// Sqrt returns the IEEE square root of f.
func (f Float) Sqrt() Float { return Float(math.Sqrt(float64(f))) }

// Recip returns 1/f.
func (f Float) Recip() Float { return 1 / f }

// String formats f like a float64.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Floats wraps xs as Floats.
func Floats(xs ...float64) []Float {
	out := make([]Float, len(xs))
	for i, x := range xs {
		out[i] = Float(x)
	}
	return out
}

var (
	_ Root[Float]     = Float(0)
	_ Root[dual.Dual] = dual.Dual{}
)
