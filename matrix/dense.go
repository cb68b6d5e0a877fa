// SPDX-License-Identifier: MIT
// Package matrix provides core linear algebra primitives for array-based computations.
// Matrix is a concrete, generic, row-major dense container, storing elements in
// a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// denseErrorf wraps an underlying error with Matrix method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major dense matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order,
// so row i is the window data[i*c : (i+1)*c].
//
// A matrix exclusively owns its storage: every derived matrix (Transpose,
// Subset, operator results) is a fresh allocation. Concurrent reads of an
// unmutated matrix are safe; writers need external synchronization.
type Matrix[T Element] struct {
	r, c int // number of rows and columns (either may be 0)
	data []T // flat backing storage, length == r*c
}

// checkShape rejects negative extents and shapes whose cell count rows*cols
// does not fit in an int.
func checkShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return fmt.Errorf("%dx%d cells overflow int: %w", rows, cols, ErrBadShape)
	}

	return nil
}

// Empty returns the canonical 0×0 matrix.
// Complexity: O(1).
func Empty[T Element]() *Matrix[T] {
	return &Matrix[T]{}
}

// New creates a rows×cols matrix initialized to the zero value of T
// (0 for numbers, false for bool).
// Stage 1 (Validate): ensure rows and cols are non-negative and rows*cols
// does not overflow.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New[T Element](rows, cols int) (*Matrix[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, err)
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows×cols matrix with every cell set to v.
// Complexity: O(r*c).
func NewFilled[T Element](rows, cols int, v T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewFromRows builds a matrix from a slice of rows. The column count is taken
// from rows[0]; every row of a different length is reported, so the returned
// error lists all ragged rows at once (each wrapping ErrShapeMismatch).
// The input is copied; later changes to rows do not affect the matrix.
//
// nil or empty input yields the 0×0 matrix.
// Complexity: O(r*c).
func NewFromRows[T Element](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return Empty[T](), nil
	}

	cols := len(rows[0])
	var merr *multierror.Error
	for i, row := range rows {
		if len(row) != cols {
			merr = multierror.Append(merr,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrShapeMismatch))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}

	m := &Matrix[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}
	return m.c
}

// Shape returns (rows, cols); (0, 0) for a nil matrix.
func (m *Matrix[T]) Shape() (int, int) {
	return m.Rows(), m.Cols()
}

// IsEmpty reports whether the matrix has no cells (rows == 0 or cols == 0).
// A nil matrix is empty.
func (m *Matrix[T]) IsEmpty() bool {
	return m == nil || m.r == 0 || m.c == 0
}

// IsSquare reports whether rows == cols (0×0 counts as square, nil does not).
func (m *Matrix[T]) IsSquare() bool {
	return m != nil && m.r == m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds if row or col is outside the matrix.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrIndexOutOfBounds if row or col is outside the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i (length Cols()).
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, denseErrorf("Row", i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j (length Rows()).
// Complexity: O(r).
func (m *Matrix[T]) Col(j int) ([]T, error) {
	if m == nil {
		return nil, denseErrorf("Col", 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrIndexOutOfBounds)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetRow overwrites row i with values.
// Errors: ErrIndexOutOfBounds for i, ErrShapeMismatch when len(values) != Cols().
// The index is validated first; on error the matrix is left untouched.
func (m *Matrix[T]) SetRow(i int, values []T) error {
	if m == nil {
		return denseErrorf("SetRow", i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return denseErrorf("SetRow", i, 0, ErrIndexOutOfBounds)
	}
	if len(values) != m.c {
		return denseErrorf("SetRow", i, 0, fmt.Errorf("len %d, want %d: %w", len(values), m.c, ErrShapeMismatch))
	}
	copy(m.data[i*m.c:(i+1)*m.c], values)

	return nil
}

// SetCol overwrites column j with values.
// Errors: ErrIndexOutOfBounds for j, ErrShapeMismatch when len(values) != Rows().
func (m *Matrix[T]) SetCol(j int, values []T) error {
	if m == nil {
		return denseErrorf("SetCol", 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return denseErrorf("SetCol", 0, j, ErrIndexOutOfBounds)
	}
	if len(values) != m.r {
		return denseErrorf("SetCol", 0, j, fmt.Errorf("len %d, want %d: %w", len(values), m.r, ErrShapeMismatch))
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = values[i]
	}

	return nil
}

// Clone returns a deep copy of the matrix. m must be non-nil.
// Complexity: O(r*c) time and memory for copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: copyData}
}

// Pos is unary plus: an identity copy of m. m must be non-nil.
func (m *Matrix[T]) Pos() *Matrix[T] {
	return m.Clone()
}

// ToRows returns the contents as a freshly allocated slice of rows.
// m must be non-nil.
// Complexity: O(r*c).
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Equals reports structural equality: same shape and identical cells.
// A nil matrix only equals another nil matrix.
func (m *Matrix[T]) Equals(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Each row is rendered as "[a, b, c]" followed by a newline; an empty matrix
// renders as "[]" with its shape.
// Complexity: O(r*c) for string construction.
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	if m.IsEmpty() {
		return fmt.Sprintf("[] (%dx%d)", m.r, m.c)
	}

	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
