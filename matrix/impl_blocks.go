// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Block-level structure operations: sub-matrix extraction (Subset),
//     in-place block insertion (SetSubset), horizontal/vertical concatenation
//     (HConcat "<<", VConcat ">>"), Transpose and the materialized Minor.
//
// Determinism & Performance:
//   - Every copy is row-by-row with copy() on contiguous row windows.
//   - Results are fresh allocations; no result aliases its source.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opSubset    = "Subset"
	opSetSubset = "SetSubset"
	opHConcat   = "HConcat"
	opVConcat   = "VConcat"
	opMinor     = "Minor"
)

// Subset extracts the half-open block [rowStart,rowEnd) × [colStart,colEnd)
// as a new (rowEnd-rowStart)×(colEnd-colStart) matrix.
//
// Behavior highlights:
//   - rowEnd == rowStart (or colEnd == colStart) is legal and yields a matrix
//     with zero rows (columns); the other extent is preserved.
//
// Errors:
//   - ErrInvalidRange when an end precedes its start, a start is negative,
//     or an end exceeds the matrix extent.
//
// Complexity:
//   - Time O(h*w), Space O(h*w) for the block.
func (m *Matrix[T]) Subset(rowStart, colStart, rowEnd, colEnd int) (*Matrix[T], error) {
	if err := ValidateRange(m, rowStart, colStart, rowEnd, colEnd); err != nil {
		return nil, matrixErrorf(opSubset, err)
	}

	h, w := rowEnd-rowStart, colEnd-colStart
	out := &Matrix[T]{r: h, c: w, data: make([]T, h*w)}
	for i := 0; i < h; i++ {
		src := (rowStart+i)*m.c + colStart
		copy(out.data[i*w:(i+1)*w], m.data[src:src+w])
	}

	return out, nil
}

// SetSubset overwrites the cells covered by block placed with its top-left
// corner at (rowStart, colStart). Rows are copied top-to-bottom, each row
// left-to-right.
//
// Errors:
//   - ErrNilMatrix when m or block is nil.
//   - ErrOutOfBounds when the block does not fit (the target is untouched).
func (m *Matrix[T]) SetSubset(rowStart, colStart int, block *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSetSubset, err)
	}
	if err := ValidateNotNil(block); err != nil {
		return matrixErrorf(opSetSubset, err)
	}
	// Compared by subtraction so huge starts cannot wrap around.
	if rowStart < 0 || colStart < 0 || rowStart > m.r-block.r || colStart > m.c-block.c {
		return matrixErrorf(opSetSubset,
			fmt.Errorf("%dx%d block at (%d,%d) in %dx%d: %w",
				block.r, block.c, rowStart, colStart, m.r, m.c, ErrOutOfBounds))
	}

	m.blit(rowStart, colStart, block)

	return nil
}

// blit copies block into m at (rowStart, colStart) without bounds checks.
func (m *Matrix[T]) blit(rowStart, colStart int, block *Matrix[T]) {
	w := block.c
	for i := 0; i < block.r; i++ {
		dst := (rowStart+i)*m.c + colStart
		copy(m.data[dst:dst+w], block.data[i*w:(i+1)*w])
	}
}

// HConcat appends other to the right of m ("<<"): the result has
// m.Rows() rows and m.Cols()+other.Cols() columns, m's columns first.
// Errors: ErrNilMatrix, ErrShapeMismatch when row counts differ,
// ErrBadShape when the joined shape overflows.
// Complexity: O(r*(cA+cB)).
func (m *Matrix[T]) HConcat(other *Matrix[T]) (*Matrix[T], error) {
	if m == nil || other == nil {
		return nil, matrixErrorf(opHConcat, ErrNilMatrix)
	}
	if m.r != other.r {
		return nil, matrixErrorf(opHConcat,
			fmt.Errorf("rows %d vs %d: %w", m.r, other.r, ErrShapeMismatch))
	}
	if m.c > math.MaxInt-other.c {
		return nil, matrixErrorf(opHConcat, fmt.Errorf("cols %d + %d: %w", m.c, other.c, ErrBadShape))
	}
	if err := checkShape(m.r, m.c+other.c); err != nil {
		return nil, matrixErrorf(opHConcat, err)
	}

	out := &Matrix[T]{r: m.r, c: m.c + other.c, data: make([]T, m.r*(m.c+other.c))}
	out.blit(0, 0, m)
	out.blit(0, m.c, other)

	return out, nil
}

// VConcat appends other below m (">>"): the result has m.Rows()+other.Rows()
// rows and m.Cols() columns, m's rows first.
// Errors: ErrNilMatrix, ErrShapeMismatch when column counts differ,
// ErrBadShape when the joined shape overflows.
func (m *Matrix[T]) VConcat(other *Matrix[T]) (*Matrix[T], error) {
	if m == nil || other == nil {
		return nil, matrixErrorf(opVConcat, ErrNilMatrix)
	}
	if m.c != other.c {
		return nil, matrixErrorf(opVConcat,
			fmt.Errorf("cols %d vs %d: %w", m.c, other.c, ErrShapeMismatch))
	}
	if m.r > math.MaxInt-other.r {
		return nil, matrixErrorf(opVConcat, fmt.Errorf("rows %d + %d: %w", m.r, other.r, ErrBadShape))
	}
	if err := checkShape(m.r+other.r, m.c); err != nil {
		return nil, matrixErrorf(opVConcat, err)
	}

	// Row-major storage makes vertical concatenation a plain append.
	data := make([]T, 0, len(m.data)+len(other.data))
	data = append(data, m.data...)
	data = append(data, other.data...)

	return &Matrix[T]{r: m.r + other.r, c: m.c, data: data}, nil
}

// Transpose returns a new Cols()×Rows() matrix with out(j,i) = m(i,j).
// m must be non-nil.
// Complexity: O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := &Matrix[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// Minor returns the matrix obtained by deleting row `row` and column `col`.
//
// Implementation (the materializing construction Determinant's column views
// reproduce):
//   - Stage 1: drop the row: rows [0,row) VConcat rows [row+1,r).
//   - Stage 2: drop the column: columns [0,col) HConcat columns [col+1,c).
//
// Errors: ErrIndexOutOfBounds for an invalid (row, col).
// Complexity: O(r*c) with four intermediate allocations.
func (m *Matrix[T]) Minor(row, col int) (*Matrix[T], error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	above, err := m.Subset(0, 0, row, m.c)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	below, err := m.Subset(row+1, 0, m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rest, err := above.VConcat(below)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	left, err := rest.Subset(0, 0, rest.r, col)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	right, err := rest.Subset(0, col+1, rest.r, rest.c)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return left.HConcat(right)
}
