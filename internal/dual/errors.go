package dual

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is raised for a variable or partial index outside the width,
	// or a negative width.
	ErrIndexOutOfRange = errors.New("dual: index out of range")

	// ErrWidthMismatch is raised when two duals of different width are combined.
	ErrWidthMismatch = errors.New("dual: width mismatch")
)

func checkWidth(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative width %d", ErrIndexOutOfRange, n))
	}
}

func checkSameWidth(a, b Dual) {
	if len(a.partial) != len(b.partial) {
		panic(fmt.Errorf("%w: %d vs %d", ErrWidthMismatch, len(a.partial), len(b.partial)))
	}
}
