package layout

import (
	"github.com/born-ml/fwdiff/internal/dual"
	"github.com/born-ml/fwdiff/internal/linalg"
)

// scalar is what the energy needs from its number type.
type scalar[T any] interface {
	linalg.Root[T]
	Recip() T
}

// energy sums the three layout terms over pts. lift turns constants into T.
func energy[T scalar[T]](pts []linalg.Vector[T], conns []Connection, weight float64, lift func(float64) T) T {
	acc := lift(0)

	for _, p := range pts {
		acc = acc.Add(p.LengthSquare())
	}

	// Coincident points give +Inf here, which is left to propagate.
	for i := range pts {
		for j := range pts {
			if i == j {
				continue
			}
			acc = acc.Add(pts[i].Sub(pts[j]).LengthSquare().Recip())
		}
	}

	w := lift(weight)
	for _, c := range conns {
		acc = acc.Add(linalg.Length(pts[c.From].Sub(pts[c.To])).Mul(w))
	}

	return acc
}

// Loss returns the layout energy at vars with its gradient.
//
// Panics with ErrVarCount when len(vars) != 2*Points.
func (p *Problem) Loss(vars []float64) dual.Dual {
	p.checkVars(vars)
	pts := make([]linalg.Vector[dual.Dual], p.Points)
	for i := range pts {
		pts[i] = linalg.NewVector(dual.Select(vars, 2*i), dual.Select(vars, 2*i+1))
	}
	n := len(vars)
	return energy(pts, p.Connections, p.weight(), func(v float64) dual.Dual {
		return dual.Constant(n, v)
	})
}

// Energy returns the layout energy at vars without a gradient.
func (p *Problem) Energy(vars []float64) float64 {
	p.checkVars(vars)
	e := energy(Points(vars), p.Connections, p.weight(), func(v float64) linalg.Float {
		return linalg.Float(v)
	})
	return float64(e)
}
