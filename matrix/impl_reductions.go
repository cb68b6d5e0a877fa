// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-wise and row-wise reductions (Min, Max, Sum, Prod) as
//     deterministic folds over the row-major buffer.
//
// Exposed API:
//   - Min(m, colwise)  -> one value per column (colwise) or per row
//   - Max(m, colwise)  -> idem
//   - Sum(m, colwise)  -> fold from 0
//   - Prod(m, colwise) -> fold from 1
//
// Determinism & Performance:
//   - colwise: outer loop over columns, inner over rows (i ascending).
//   - rowwise: outer loop over rows, inner over columns (j ascending).
//   - A zero-length reduced axis is an error (ErrEmptyReduction), never a
//     vector of fabricated identities.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMin  = "Min"
	opMax  = "Max"
	opSum  = "Sum"
	opProd = "Prod"
)

// Colwise and Rowwise name the reduction direction at call sites:
// Sum(m, matrix.Colwise) reads better than Sum(m, true).
const (
	Colwise = true
	Rowwise = false
)

// reduce folds m along the requested axis.
// seed(k) gives the initial accumulator for output slot k; step folds one cell.
func reduce[T Number](m *Matrix[T], colwise bool, opTag string, seed func(k int) T, step func(acc, v T) T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// The reduced axis is the one each output slot runs along.
	if colwise && m.r == 0 {
		return nil, matrixErrorf(opTag, fmt.Errorf("colwise over %dx%d: %w", m.r, m.c, ErrEmptyReduction))
	}
	if !colwise && m.c == 0 {
		return nil, matrixErrorf(opTag, fmt.Errorf("rowwise over %dx%d: %w", m.r, m.c, ErrEmptyReduction))
	}

	var i, j int
	if colwise {
		out := make([]T, m.c)
		for j = 0; j < m.c; j++ {
			acc := seed(j)
			for i = 0; i < m.r; i++ {
				acc = step(acc, m.data[i*m.c+j])
			}
			out[j] = acc
		}
		return out, nil
	}

	out := make([]T, m.r)
	for i = 0; i < m.r; i++ {
		acc := seed(i)
		row := m.data[i*m.c : (i+1)*m.c]
		for j = 0; j < m.c; j++ {
			acc = step(acc, row[j])
		}
		out[i] = acc
	}

	return out, nil
}

// Min returns the minimum of each column (colwise) or each row.
// The accumulator is seeded from row 0 (colwise) or column 0 (rowwise) and
// folded with <, so NaN seeds stick and later NaNs are skipped.
// Errors: ErrNilMatrix, ErrEmptyReduction.
// Complexity: O(r*c).
func Min[T Number](m *Matrix[T], colwise bool) ([]T, error) {
	return reduce(m, colwise, opMin, firstOf(m, colwise), func(acc, v T) T {
		if v < acc {
			return v
		}
		return acc
	})
}

// Max returns the maximum of each column (colwise) or each row, folded with >.
// Errors: ErrNilMatrix, ErrEmptyReduction.
func Max[T Number](m *Matrix[T], colwise bool) ([]T, error) {
	return reduce(m, colwise, opMax, firstOf(m, colwise), func(acc, v T) T {
		if v > acc {
			return v
		}
		return acc
	})
}

// Sum returns the sum of each column (colwise) or each row, starting from 0.
func Sum[T Number](m *Matrix[T], colwise bool) ([]T, error) {
	return reduce(m, colwise, opSum, func(int) T { return 0 }, func(acc, v T) T { return acc + v })
}

// Prod returns the product of each column (colwise) or each row, starting from 1.
func Prod[T Number](m *Matrix[T], colwise bool) ([]T, error) {
	return reduce(m, colwise, opProd, func(int) T { return 1 }, func(acc, v T) T { return acc * v })
}

// firstOf seeds Min/Max with the first cell of the reduced line: row 0 for
// columns, column 0 for rows. Only called after the empty-axis check.
func firstOf[T Number](m *Matrix[T], colwise bool) func(k int) T {
	return func(k int) T {
		if colwise {
			return m.data[k]
		}
		return m.data[k*m.c]
	}
}

// MinMax returns the global minimum and maximum over all cells.
// Errors: ErrNilMatrix, ErrEmptyReduction for an empty matrix.
func MinMax[T Number](m *Matrix[T]) (lo, hi T, err error) {
	mins, err := Min(m, Colwise)
	if err != nil {
		return lo, hi, err
	}
	maxs, err := Max(m, Colwise)
	if err != nil {
		return lo, hi, err
	}
	if len(mins) == 0 {
		return lo, hi, matrixErrorf("MinMax", ErrEmptyReduction)
	}

	lo, hi = mins[0], maxs[0]
	for j := 1; j < len(mins); j++ {
		if mins[j] < lo {
			lo = mins[j]
		}
		if maxs[j] > hi {
			hi = maxs[j]
		}
	}

	return lo, hi, nil
}
