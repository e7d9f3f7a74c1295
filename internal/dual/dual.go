// Package dual implements forward-mode automatic differentiation.
//
// A Dual carries a function value together with its partial derivatives with
// respect to a fixed number of independent variables (the width). Every
// arithmetic method propagates both parts exactly, so evaluating an
// expression over Duals yields its value and full gradient in one pass.
//
// Example:
//
//	vars := []float64{3, 4}
//	x := dual.Select(vars, 0)
//	y := dual.Select(vars, 1)
//	r := x.Mul(x).Add(y.Mul(y)).Sqrt() // r = 5, ∂r/∂x = 0.6, ∂r/∂y = 0.8
package dual

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dual is a value paired with its gradient over Width() variables.
//
// Duals are immutable: every operation returns a new Dual and never touches
// its operands. The zero value is the constant 0 of width 0.
type Dual struct {
	val     float64
	partial []float64
}

// Constant returns v with all n partials zero.
func Constant(n int, v float64) Dual {
	checkWidth(n)
	return Dual{val: v, partial: make([]float64, n)}
}

// Zero returns the additive identity of width n.
func Zero(n int) Dual {
	return Constant(n, 0)
}

// One returns the multiplicative identity of width n.
func One(n int) Dual {
	return Constant(n, 1)
}

// Variable returns v as independent variable i of n.
//
// Panics if i is outside [0, n).
func Variable(n int, v float64, i int) Dual {
	checkWidth(n)
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: variable %d of %d", ErrIndexOutOfRange, i, n))
	}
	d := Dual{val: v, partial: make([]float64, n)}
	d.partial[i] = 1
	return d
}

// Select returns vars[i] as variable i of len(vars).
func Select(vars []float64, i int) Dual {
	if i < 0 || i >= len(vars) {
		panic(fmt.Errorf("%w: variable %d of %d", ErrIndexOutOfRange, i, len(vars)))
	}
	return Variable(len(vars), vars[i], i)
}

// Value returns the function value.
func (d Dual) Value() float64 {
	return d.val
}

// Width returns the number of partial derivatives.
func (d Dual) Width() int {
	return len(d.partial)
}

// Partial returns ∂value/∂x_i.
func (d Dual) Partial(i int) float64 {
	if i < 0 || i >= len(d.partial) {
		panic(fmt.Errorf("%w: partial %d of %d", ErrIndexOutOfRange, i, len(d.partial)))
	}
	return d.partial[i]
}

// Partials returns a copy of the gradient.
func (d Dual) Partials() []float64 {
	out := make([]float64, len(d.partial))
	copy(out, d.partial)
	return out
}

// String formats the dual as "value [p0 p1 ...]".
func (d Dual) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(d.val, 'g', -1, 64))
	sb.WriteString(" [")
	for i, p := range d.partial {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Add returns d + o.
func (d Dual) Add(o Dual) Dual {
	checkSameWidth(d, o)
	out := d.withValue(d.val + o.val)
	for i := range out.partial {
		out.partial[i] = d.partial[i] + o.partial[i]
	}
	return out
}

// Sub returns d - o.
func (d Dual) Sub(o Dual) Dual {
	checkSameWidth(d, o)
	out := d.withValue(d.val - o.val)
	for i := range out.partial {
		out.partial[i] = d.partial[i] - o.partial[i]
	}
	return out
}

// Mul returns d * o using the product rule.
func (d Dual) Mul(o Dual) Dual {
	checkSameWidth(d, o)
	out := d.withValue(d.val * o.val)
	for i := range out.partial {
		out.partial[i] = d.partial[i]*o.val + d.val*o.partial[i]
	}
	return out
}

// Div returns d / o, computed as d * (1/o).
func (d Dual) Div(o Dual) Dual {
	return o.Recip().Mul(d)
}

// Neg returns -d.
func (d Dual) Neg() Dual {
	return d.Scale(-1)
}

// Scale returns d * s for a plain constant s.
func (d Dual) Scale(s float64) Dual {
	out := d.withValue(d.val * s)
	for i := range out.partial {
		out.partial[i] = d.partial[i] * s
	}
	return out
}

// Recip returns 1/d.
//
// A zero value is not an error: the result follows IEEE-754 and carries
// infinities or NaNs into every later operation.
func (d Dual) Recip() Dual {
	out := d.withValue(1 / d.val)
	sq := d.val * d.val
	for i := range out.partial {
		out.partial[i] = -d.partial[i] / sq
	}
	return out
}

// PowU returns d^n by repeated squaring. PowU(0) is the constant 1.
func (d Dual) PowU(n uint) Dual {
	acc := One(d.Width())
	v := d
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(v)
		}
		n >>= 1
		if n > 0 {
			v = v.Mul(v)
		}
	}
	return acc
}

// PowI returns d^n for a signed integer exponent.
func (d Dual) PowI(n int) Dual {
	if n >= 0 {
		return d.PowU(uint(n))
	}
	return d.Recip().PowU(uint(-n))
}

// PowF returns d^p for a real exponent.
//
// Non-integer p with a non-positive value yields NaN as math.Pow does.
func (d Dual) PowF(p float64) Dual {
	out := d.withValue(math.Pow(d.val, p))
	dp := p * math.Pow(d.val, p-1)
	for i := range out.partial {
		out.partial[i] = d.partial[i] * dp
	}
	return out
}

// Sqrt returns d^0.5.
func (d Dual) Sqrt() Dual {
	return d.PowF(0.5)
}

// Sum folds xs with Add starting from Zero(n).
func Sum(n int, xs ...Dual) Dual {
	acc := Zero(n)
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// withValue returns a dual of d's width with fresh, zeroed partials.
func (d Dual) withValue(v float64) Dual {
	return Dual{val: v, partial: make([]float64, len(d.partial))}
}
