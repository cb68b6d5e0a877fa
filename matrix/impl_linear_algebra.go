// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over *Matrix[T]:
// matrix product, identity construction and the determinant family.
// All functions perform strict fail-fast validation and return clear errors
// on shape mismatches instead of passing an operand through.
//
// Purpose:
//   - Determinant: the reference cofactor (Laplace) expansion along row 0.
//   - MatMul: textbook i→j→k product with a zero-initialized accumulator.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatMul      = "MatMul"
	opIdentity    = "NewIdentity"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields the empty 0×0 matrix.
// Errors: ErrBadShape when n < 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// MatMul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate A, B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: for each (i, j) accumulate Σ_k A[i,k]*B[k,j] starting from zero,
//     k ascending.
//
// Behavior highlights:
//   - A.Cols == 0 yields an A.Rows × B.Cols zero matrix.
//   - No zero-skipping: NaN/Inf in either operand propagate like a plain dot product.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MatMul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	aRows, inner, bCols := a.r, a.c, b.c
	res := &Matrix[T]{r: aRows, c: bCols, data: make([]T, aRows*bCols)}
	var (
		i, j, k int
		acc     T
	)
	for i = 0; i < aRows; i++ {
		rowA := a.data[i*inner : (i+1)*inner]
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += rowA[k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Determinant computes det(m) by cofactor (Laplace) expansion along the first row.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square) and the optional order limit.
//   - Stage 2: base cases: 0×0 → 1 (empty product), 1×1 → m[0,0],
//     2×2 → a·d − b·c.
//   - Stage 3: n ≥ 3: acc = 0; for j in [0,n): acc += s(j)·m[0,j] · det(minor_j)
//     with s(j) = −1 for odd j. minor_j drops row 0 and column j; it is
//     represented as a column-index view over the original storage, keeping
//     the columns in the order left block [0,j) then right block [j+1,n),
//     which is exactly the order of Subset+HConcat (see Minor). The result is
//     therefore identical, operation by operation, to the materializing
//     algorithm.
//
// Behavior highlights:
//   - Non-square input is an error (ErrNotSquare), never a silent zero.
//   - Cost is O(n!) time and O(n²) index scratch. This is the documented
//     reference semantics; bound the order with WithCofactorLimit.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrCofactorLimit.
func Determinant[T Number](m *Matrix[T], opts ...Option) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	o := gatherOptions(opts...)
	n := m.r
	if o.cofactorLimit > 0 && n > o.cofactorLimit {
		return zero, matrixErrorf(opDeterminant,
			fmt.Errorf("order %d > limit %d: %w", n, o.cofactorLimit, ErrCofactorLimit))
	}
	if n >= o.warnOrder {
		o.logger.Warn("cofactor determinant has factorial cost", "order", n, "warn_order", o.warnOrder)
	}
	if n == 0 {
		return 1, nil
	}

	// scratch[d] holds the column view used at recursion depth d (order n-d).
	cols := make([]int, n)
	for j := range cols {
		cols[j] = j
	}
	scratch := make([][]int, n)
	for d := 1; d < n; d++ {
		scratch[d] = make([]int, n-d)
	}

	o.logger.Trace("cofactor expansion start", "order", n)
	det := cofactor(m, 0, cols, scratch)
	o.logger.Trace("cofactor expansion done", "order", n, "det", det)

	return det, nil
}

// cofactor returns the determinant of the square view formed by rows
// [row0, row0+len(cols)) and the listed columns.
func cofactor[T Number](m *Matrix[T], row0 int, cols []int, scratch [][]int) T {
	n := len(cols)
	top := m.data[row0*m.c : (row0+1)*m.c]
	switch n {
	case 1:
		return top[cols[0]]
	case 2:
		next := m.data[(row0+1)*m.c : (row0+2)*m.c]
		return top[cols[0]]*next[cols[1]] - top[cols[1]]*next[cols[0]]
	}

	depth := row0 + 1
	var acc T
	for j := 0; j < n; j++ {
		// Rebuild the minor's column view for this j; deeper levels only touch
		// deeper scratch rows, so the buffer can be reused across iterations.
		minor := scratch[depth][:0]
		minor = append(minor, cols[:j]...)
		minor = append(minor, cols[j+1:]...)

		cur := top[cols[j]]
		if j%2 == 1 {
			cur = -cur
		}
		acc += cur * cofactor(m, row0+1, minor, scratch)
	}

	return acc
}
