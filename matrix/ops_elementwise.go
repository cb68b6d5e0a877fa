// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise operator family: arithmetic (Add, Sub, MulElem,
//     DivElem, Scale, DivScalar, Neg, Abs), ordering comparisons (Less, LessEq,
//     Greater, GreaterEq) and the truthiness-based logical operators (Eq, Ne,
//     And, Or, Not).
//   - Keep every tight loop in two private kernels (ewMap, ewZip) so all
//     operators share validation, allocation and loop order.
//
// Design:
//   - Arithmetic and ordering need Number, so they are package functions.
//   - Equality and logic only need Element, so they are methods.
//   - Comparison and logical results are always *Matrix[bool].
//
// Determinism & Performance:
//   - Single flat 0..n-1 walk over row-major storage; one allocation per result.
//   - Division is atomic: every divisor is checked before the output is allocated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMulElem   = "MulElem"
	opDivElem   = "DivElem"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opNeg       = "Neg"
	opAbs       = "Abs"
	opLess      = "Less"
	opLessEq    = "LessEq"
	opGreater   = "Greater"
	opGreaterEq = "GreaterEq"
	opEq        = "Eq"
	opNe        = "Ne"
	opAnd       = "And"
	opOr        = "Or"
)

// ewMap computes out[k] = f(m[k]) over the flat buffer.
// Time: O(r*c). Space: O(r*c).
func ewMap[T, U Element](m *Matrix[T], f func(T) U) *Matrix[U] {
	out := &Matrix[U]{r: m.r, c: m.c, data: make([]U, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out
}

// ewZip computes out[k] = f(a[k], b[k]) for equal-shaped a and b.
// Errors: ErrNilMatrix, ErrShapeMismatch (wrapped with opTag).
// Time: O(r*c). Space: O(r*c).
func ewZip[T, U Element](a, b *Matrix[T], opTag string, f func(x, y T) U) (*Matrix[U], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := &Matrix[U]{r: a.r, c: a.c, data: make([]U, len(a.data))}
	for k := range a.data {
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewZip(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewZip(a, b, opSub, func(x, y T) T { return x - y })
}

// MulElem computes the element-wise (Hadamard) product C[i,j] = A[i,j]*B[i,j].
// For the matrix product see MatMul.
func MulElem[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewZip(a, b, opMulElem, func(x, y T) T { return x * y })
}

// DivElem computes the element-wise quotient C[i,j] = A[i,j]/B[i,j].
//
// Implementation:
//   - Stage 1: validate shapes.
//   - Stage 2: scan B for a zero divisor; the first one aborts the whole
//     operation with ErrDivisionByZero (no partial output exists).
//   - Stage 3: divide.
//
// Integer element types use Go's truncating division.
func DivElem[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opDivElem, err)
	}
	for k, v := range b.data {
		if v == 0 {
			return nil, matrixErrorf(opDivElem,
				fmt.Errorf("divisor (%d,%d): %w", k/b.c, k%b.c, ErrDivisionByZero))
		}
	}

	return ewZip(a, b, opDivElem, func(x, y T) T { return x / y })
}

// Scale multiplies every element by s.
func Scale[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return ewMap(m, func(v T) T { return v * s }), nil
}

// DivScalar divides every element by s; s == 0 fails with ErrDivisionByZero.
func DivScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if s == 0 {
		return nil, matrixErrorf(opDivScalar, ErrDivisionByZero)
	}

	return ewMap(m, func(v T) T { return v / s }), nil
}

// Neg returns the element-wise negation -m.
// Unsigned element types wrap around, as Go's unary minus does.
func Neg[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return ewMap(m, func(v T) T { return -v }), nil
}

// Abs returns the element-wise absolute value |m|.
// bool matrices are rejected at compile time (bool is not a Number).
// The most negative value of a signed integer type stays negative, as in Go.
func Abs[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAbs, err)
	}

	return ewMap(m, func(v T) T {
		if v < 0 {
			return -v
		}
		return v
	}), nil
}

// Less returns the mask A < B.
func Less[T Number](a, b *Matrix[T]) (*Matrix[bool], error) {
	return ewZip(a, b, opLess, func(x, y T) bool { return x < y })
}

// LessEq returns the mask A <= B.
func LessEq[T Number](a, b *Matrix[T]) (*Matrix[bool], error) {
	return ewZip(a, b, opLessEq, func(x, y T) bool { return x <= y })
}

// Greater returns the mask A > B.
func Greater[T Number](a, b *Matrix[T]) (*Matrix[bool], error) {
	return ewZip(a, b, opGreater, func(x, y T) bool { return x > y })
}

// GreaterEq returns the mask A >= B.
func GreaterEq[T Number](a, b *Matrix[T]) (*Matrix[bool], error) {
	return ewZip(a, b, opGreaterEq, func(x, y T) bool { return x >= y })
}

// Eq returns the element-wise equality mask m == other.
// For a single structural verdict use Equals.
func (m *Matrix[T]) Eq(other *Matrix[T]) (*Matrix[bool], error) {
	return ewZip(m, other, opEq, func(x, y T) bool { return x == y })
}

// Ne returns the element-wise inequality mask m != other.
func (m *Matrix[T]) Ne(other *Matrix[T]) (*Matrix[bool], error) {
	return ewZip(m, other, opNe, func(x, y T) bool { return x != y })
}

// And returns the element-wise logical conjunction by truthiness.
func (m *Matrix[T]) And(other *Matrix[T]) (*Matrix[bool], error) {
	return ewZip(m, other, opAnd, func(x, y T) bool { return truthy(x) && truthy(y) })
}

// Or returns the element-wise logical disjunction by truthiness.
func (m *Matrix[T]) Or(other *Matrix[T]) (*Matrix[bool], error) {
	return ewZip(m, other, opOr, func(x, y T) bool { return truthy(x) || truthy(y) })
}

// Not returns the element-wise logical negation: true where the cell is zero/false.
// m must be non-nil.
func (m *Matrix[T]) Not() *Matrix[bool] {
	return ewMap(m, func(v T) bool { return !truthy(v) })
}

// Any reports whether at least one cell is truthy. Empty or nil matrix: false.
// Short-circuits on the first truthy cell.
func (m *Matrix[T]) Any() bool {
	if m == nil {
		return false
	}
	for _, v := range m.data {
		if truthy(v) {
			return true
		}
	}

	return false
}

// All reports whether every cell is truthy. Empty or nil matrix: true.
// Short-circuits on the first falsy cell.
func (m *Matrix[T]) All() bool {
	if m == nil {
		return true
	}
	for _, v := range m.data {
		if !truthy(v) {
			return false
		}
	}

	return true
}
