// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every fallible operation MUST return one of these sentinels
// (possibly wrapped) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions and no operation silently returns
// its left operand or a zero value in place of an error.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Validators wrap these sentinels with a validator
// tag, public operations wrap once more with the operation tag via
// matrixErrorf, so a full message reads "Add: ValidateSameShape: Rows:
// matrix: shape mismatch". Callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index/range -> numeric (division by zero) -> policy
// (cofactor limit).

var (
	// ErrBadShape is returned when a requested shape is invalid: negative rows
	// or cols, or more cells than an int can count.
	// Zero-sized shapes are legal empty matrices.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfBounds indicates that a row or column index is outside [0, extent).
	// At/Set/Row/Col/SetRow/SetCol MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates incompatible operand shapes: element-wise ops on
	// different shapes, MatMul with a.Cols != b.Rows, concatenation with unequal
	// shared extents, or SetRow/SetCol with a wrong-length input.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidRange indicates invalid sub-matrix bounds (end before start,
	// negative start, or end beyond the matrix extent).
	ErrInvalidRange = errors.New("matrix: invalid range")

	// ErrOutOfBounds indicates that a block does not fit inside the target at the
	// requested offset (SetSubset).
	ErrOutOfBounds = errors.New("matrix: block out of bounds")

	// ErrDivisionByZero signals an element-wise or scalar division by a zero divisor.
	// Division is atomic: no partial result is produced.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrEmptyReduction signals a reduction (Min/Max/Sum/Prod) along a zero-length axis.
	ErrEmptyReduction = errors.New("matrix: reduction over empty axis")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (ValidateFinite).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrCofactorLimit signals that the cofactor determinant was refused because the
	// matrix order exceeds the caller-configured limit (WithCofactorLimit).
	ErrCofactorLimit = errors.New("matrix: cofactor expansion order exceeds limit")
)
