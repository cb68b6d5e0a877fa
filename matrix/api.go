// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of New with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols)
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike[T Element](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return New[T](m.r, m.c)
}

// IdentityLike returns I_n for a square m (n = m.Rows()).
// Errors: ErrNilMatrix, ErrNotSquare.
func IdentityLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity[T](m.r)
}

// ---------- Operator-style aliases ----------

// Hadamard is an alias of MulElem (element-wise product).
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return MulElem(a, b) }

// Product is an alias of MatMul (matrix product).
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return MatMul(a, b) }

// RowSums returns Σ_j m[i,j] for every row i.
func RowSums[T Number](m *Matrix[T]) ([]T, error) { return Sum(m, Rowwise) }

// ColSums returns Σ_i m[i,j] for every column j.
func ColSums[T Number](m *Matrix[T]) ([]T, error) { return Sum(m, Colwise) }

// Trace returns Σ_i m[i,i] for a square matrix (0 for 0×0).
// Errors: ErrNilMatrix, ErrNotSquare.
func Trace[T Number](m *Matrix[T]) (T, error) {
	var acc T
	if err := ValidateSquare(m); err != nil {
		return acc, matrixErrorf("Trace", err)
	}
	for i := 0; i < m.r; i++ {
		acc += m.data[i*m.c+i]
	}

	return acc, nil
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds for every cell.
// NaN never compares close. Used to compare floating-point results whose
// operation order differs (e.g. MatMul associativity).
// Errors: ErrNilMatrix, ErrShapeMismatch; panics are never raised.
func AllClose[T Float](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if rtol < 0 || atol < 0 {
		return false, matrixErrorf("AllClose", fmt.Errorf("negative tolerance: %w", ErrInvalidRange))
	}
	for k := range a.data {
		x, y := float64(a.data[k]), float64(b.data[k])
		if x == y {
			continue // covers equal infinities
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) || math.IsNaN(x-y) {
			return false, nil
		}
	}

	return true, nil
}
