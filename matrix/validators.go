// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/index/range checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more with their operation tag (matrixErrorf).
//
// Determinism & Performance:
//  - All checks except ValidateFinite are O(1) and allocate nothing.
//  - ValidateFinite scans every cell and reports every offending one.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Generic validators are functions, not methods, so they also accept nil.

package matrix

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape[T, U Element](a *Matrix[T], b *Matrix[U]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNotSquare.
func ValidateSquare[T Element](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateMulCompatible checks a and b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible[T Element](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrShapeMismatch)
	}

	return nil
}

// ValidateIndex checks 0 ≤ row < Rows and 0 ≤ col < Cols.
func ValidateIndex[T Element](m *Matrix[T], row, col int) error {
	if m == nil {
		return validatorErrorf("ValidateIndex", ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", row, col), ErrIndexOutOfBounds)
	}

	return nil
}

// ValidateRange checks the half-open sub-matrix range
// [rowStart,rowEnd) × [colStart,colEnd) against m.
// Empty ranges (start == end) are valid.
func ValidateRange[T Element](m *Matrix[T], rowStart, colStart, rowEnd, colEnd int) error {
	if m == nil {
		return validatorErrorf("ValidateRange", ErrNilMatrix)
	}
	tag := fmt.Sprintf("ValidateRange([%d,%d)x[%d,%d))", rowStart, rowEnd, colStart, colEnd)
	if rowStart < 0 || colStart < 0 {
		return validatorErrorf(tag, ErrInvalidRange)
	}
	if rowEnd < rowStart || colEnd < colStart {
		return validatorErrorf(tag, ErrInvalidRange)
	}
	if rowEnd > m.r || colEnd > m.c {
		return validatorErrorf(tag, ErrInvalidRange)
	}

	return nil
}

// ValidateFinite scans every cell of a floating-point matrix and reports each
// NaN or ±Inf it finds; the returned error aggregates all offending cells
// (each wrapping ErrNaNInf).
// Complexity: O(r*c).
func ValidateFinite[T Float](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}

	var merr *multierror.Error
	for idx, v := range m.data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			merr = multierror.Append(merr,
				fmt.Errorf("cell (%d,%d) = %v: %w", idx/m.c, idx%m.c, f, ErrNaNInf))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	return nil
}
