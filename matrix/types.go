// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints.
// This file contains ONLY the type-parameter constraints shared by every
// operation. The container itself lives in dense.go; errors and options live
// in dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Element is the set of cell types a Matrix may hold: any integer, any float,
// or bool. One matrix holds exactly one element type.
//
// Operations that only need equality or truthiness (access, mutation,
// transpose, concatenation, Any/All, Not/And/Or, Eq/Ne) are methods
// on *Matrix[T Element]. Arithmetic and ordering need Number.
type Element interface {
	constraints.Integer | constraints.Float | ~bool
}

// Number is the set of element types supporting +, -, *, / and ordering.
// bool is excluded, so Abs/Neg/Sum/Determinant on a boolean matrix do not
// compile rather than failing at run time.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts tolerance-based helpers (AllClose, ValidateFinite) to
// floating-point element types.
type Float interface {
	constraints.Float
}

// truthy reports whether v is "true" in the logical sense: non-zero for
// numbers, true for bool. Comparing against the zero value works for every
// member of Element because all of them are comparable.
func truthy[T Element](v T) bool {
	var zero T
	return v != zero
}
