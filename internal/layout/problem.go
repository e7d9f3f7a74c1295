// Package layout places points in the plane by minimising a differentiable
// energy.
//
// Every point is attracted to the origin, every pair of points repels with
// the reciprocal of its squared distance, and every connection pulls its two
// endpoints together with a weighted distance term. Point i occupies
// variables 2i (x) and 2i+1 (y).
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/fwdiff/internal/linalg"
)

// DefaultConnectionWeight scales the connection term when none is configured.
const DefaultConnectionWeight = 10.0

var (
	// ErrNoPoints is returned for a problem without points.
	ErrNoPoints = errors.New("layout: problem has no points")

	// ErrBadConnection is returned for a malformed or out-of-range connection.
	ErrBadConnection = errors.New("layout: invalid connection")

	// ErrVarCount is raised when a variable vector does not hold 2 values per point.
	ErrVarCount = errors.New("layout: variable count mismatch")
)

// Connection joins two points by index.
type Connection struct {
	From, To int
}

// String formats c as "from-to".
func (c Connection) String() string {
	return fmt.Sprintf("%d-%d", c.From, c.To)
}

// Problem is a point layout to optimise.
type Problem struct {
	Points           int
	Connections      []Connection
	ConnectionWeight float64 // Weight of the connection term (default: 10)
}

// DefaultProblem returns the ten-point, eleven-connection demo layout.
func DefaultProblem() *Problem {
	return &Problem{
		Points: 10,
		Connections: []Connection{
			{0, 1}, {0, 2}, {0, 3}, {3, 4}, {1, 2}, {3, 7},
			{0, 6}, {1, 9}, {9, 8}, {5, 9}, {4, 5},
		},
		ConnectionWeight: DefaultConnectionWeight,
	}
}

// Validate checks the point count and every connection.
func (p *Problem) Validate() error {
	if p.Points <= 0 {
		return fmt.Errorf("%w: %d", ErrNoPoints, p.Points)
	}
	for _, c := range p.Connections {
		if c.From < 0 || c.From >= p.Points || c.To < 0 || c.To >= p.Points {
			return fmt.Errorf("%w: %v out of range for %d points", ErrBadConnection, c, p.Points)
		}
		if c.From == c.To {
			return fmt.Errorf("%w: %v joins a point to itself", ErrBadConnection, c)
		}
	}
	return nil
}

// Vars returns the number of optimisation variables, two per point.
func (p *Problem) Vars() int {
	return 2 * p.Points
}

func (p *Problem) weight() float64 {
	if p.ConnectionWeight == 0 {
		return DefaultConnectionWeight
	}
	return p.ConnectionWeight
}

func (p *Problem) checkVars(vars []float64) {
	if len(vars) != p.Vars() {
		panic(fmt.Errorf("%w: %d values for %d points", ErrVarCount, len(vars), p.Points))
	}
}

// Circle places n points evenly on the unit circle, point k at angle
// 2πk/n with x = sin and y = cos.
func Circle(n int) []float64 {
	return Placement(n, nil)
}

// Placement is Circle with point perm[k] put at slot k. A nil perm is the
// identity.
func Placement(n int, perm []int) []float64 {
	vars := make([]float64, 2*n)
	for k := 0; k < n; k++ {
		i := k
		if perm != nil {
			i = perm[k]
		}
		t := float64(k) / float64(n) * 2 * math.Pi
		vars[2*i] = math.Sin(t)
		vars[2*i+1] = math.Cos(t)
	}
	return vars
}

// Points decodes a variable vector into 2-D points.
func Points(vars []float64) []linalg.Vector[linalg.Float] {
	if len(vars)%2 != 0 {
		panic(fmt.Errorf("%w: odd length %d", ErrVarCount, len(vars)))
	}
	pts := make([]linalg.Vector[linalg.Float], len(vars)/2)
	for i := range pts {
		pts[i] = linalg.NewVector(linalg.Float(vars[2*i]), linalg.Float(vars[2*i+1]))
	}
	return pts
}
