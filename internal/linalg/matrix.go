package linalg

import "fmt"

// Matrix is an N×M matrix stored as M column vectors of dimension N.
type Matrix[T Scalar[T]] struct {
	rows int
	cols []Vector[T]
}

// NewMatrix builds a matrix from its columns.
//
// All columns must share one dimension; a ragged set panics with
// ErrDimensionMismatch. With no columns the matrix is N×0 with N = 0.
func NewMatrix[T Scalar[T]](cols ...Vector[T]) Matrix[T] {
	m := Matrix[T]{cols: make([]Vector[T], len(cols))}
	for j, c := range cols {
		if j == 0 {
			m.rows = c.Dim()
		}
		checkDims(m.rows, c.Dim())
		m.cols[j] = c
	}
	return m
}

// Rows returns N.
func (m Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns M.
func (m Matrix[T]) Cols() int {
	return len(m.cols)
}

// Col returns column j.
func (m Matrix[T]) Col(j int) Vector[T] {
	if j < 0 || j >= len(m.cols) {
		panic(fmt.Errorf("%w: column %d of %d", ErrOutOfRange, j, len(m.cols)))
	}
	return m.cols[j]
}

// At returns the element in row i, column j.
func (m Matrix[T]) At(i, j int) T {
	return m.Col(j).At(i)
}

// Add returns m + o columnwise.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] {
	m.checkSameShape(o)
	out := Matrix[T]{rows: m.rows, cols: make([]Vector[T], len(m.cols))}
	for j := range m.cols {
		out.cols[j] = m.cols[j].Add(o.cols[j])
	}
	return out
}

// Sub returns m - o columnwise.
func (m Matrix[T]) Sub(o Matrix[T]) Matrix[T] {
	m.checkSameShape(o)
	out := Matrix[T]{rows: m.rows, cols: make([]Vector[T], len(m.cols))}
	for j := range m.cols {
		out.cols[j] = m.cols[j].Sub(o.cols[j])
	}
	return out
}

// MulVec returns m·v as the sum over columns of col[j] scaled by v[j].
//
// Panics with ErrEmptyMatrix when m has no columns.
func (m Matrix[T]) MulVec(v Vector[T]) Vector[T] {
	if len(m.cols) == 0 {
		panic(ErrEmptyMatrix)
	}
	checkDims(len(m.cols), v.Dim())
	acc := m.cols[0].Scale(v.elems[0])
	for j := 1; j < len(m.cols); j++ {
		acc = acc.Add(m.cols[j].Scale(v.elems[j]))
	}
	return acc
}

// Mul returns the N×K product of m (N×M) and o (M×K).
func (m Matrix[T]) Mul(o Matrix[T]) Matrix[T] {
	out := Matrix[T]{rows: m.rows, cols: make([]Vector[T], len(o.cols))}
	for k, c := range o.cols {
		out.cols[k] = m.MulVec(c)
	}
	return out
}

func (m Matrix[T]) checkSameShape(o Matrix[T]) {
	if m.rows != o.rows || len(m.cols) != len(o.cols) {
		panic(fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, m.rows, len(m.cols), o.rows, len(o.cols)))
	}
}
